package fix_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/jandent/pkg/fix"
)

func FuzzGenerateDiff(f *testing.F) {
	f.Add("", "")
	f.Add("本文", "　本文")
	f.Add("a\nb\nc", "a\nx\nc")
	f.Add("line1\nline2", "line1\nline2\nline3")
	f.Add("a\nb\nc\nd\ne", "a\nB\nc\nD\ne")

	f.Fuzz(func(t *testing.T, original, modified string) {
		diff := fix.GenerateDiff("test.txt", strings.Split(original, "\n"), strings.Split(modified, "\n"))
		if diff == nil {
			return
		}

		_ = diff.String()

		for hunkIdx, hunk := range diff.Hunks {
			if hunk.OriginalStart < 1 || hunk.ModifiedStart < 1 {
				t.Errorf("hunk %d: starts must be >= 1", hunkIdx)
			}

			var ctxCount, addCount, remCount int
			for _, line := range hunk.Lines {
				switch line.Kind {
				case fix.DiffLineContext:
					ctxCount++
				case fix.DiffLineAdd:
					addCount++
				case fix.DiffLineRemove:
					remCount++
				}
			}

			if ctxCount+remCount != hunk.OriginalCount {
				t.Errorf("hunk %d: context(%d) + remove(%d) != OriginalCount(%d)",
					hunkIdx, ctxCount, remCount, hunk.OriginalCount)
			}
			if ctxCount+addCount != hunk.ModifiedCount {
				t.Errorf("hunk %d: context(%d) + add(%d) != ModifiedCount(%d)",
					hunkIdx, ctxCount, addCount, hunk.ModifiedCount)
			}
		}
	})
}

func FuzzApply(f *testing.F) {
	f.Add("こんにちは", 0, 0, "　")
	f.Add("あ―い", 2, 2, "―")
	f.Add("はい。。", 3, 4, "")

	f.Fuzz(func(t *testing.T, line string, start, end int, newText string) {
		runes := []rune(line)
		if start < 0 || end < start || end > len(runes) {
			return
		}

		got, err := fix.Apply(line, []fix.TextEdit{{Start: start, End: end, NewText: newText}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := string(runes[:start]) + newText + string(runes[end:])
		if got != want {
			t.Errorf("Apply = %q, want %q", got, want)
		}
	})
}

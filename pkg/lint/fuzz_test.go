package lint_test

import (
	"testing"

	"github.com/yaklabco/jandent/pkg/lint"
)

func FuzzEngine(f *testing.F) {
	f.Add("えっ！。本当")
	f.Add("「はい」。。\r\nいいえ――\r")
	f.Add("…ゃゃ　 ")
	f.Add("12,345.67.8円")
	f.Add("")

	engine := lint.NewEngine(nil, nil)

	f.Fuzz(func(t *testing.T, document string) {
		if _, err := engine.Convert(document); err != nil {
			t.Fatalf("Convert(%q) error = %v", document, err)
		}

		findings, err := engine.Lint(document)
		if err != nil {
			t.Fatalf("Lint(%q) error = %v", document, err)
		}

		lines := lint.SplitLines(document)
		for _, finding := range findings {
			if finding.Line < 1 || finding.Line > len(lines) {
				t.Fatalf("finding line %d outside 1..%d", finding.Line, len(lines))
			}
			width := len([]rune(lines[finding.Line-1]))
			if finding.ColumnBegin < 0 || finding.ColumnBegin > finding.ColumnEnd || finding.ColumnEnd > width {
				t.Fatalf("finding span %d..%d outside line of %d runes", finding.ColumnBegin, finding.ColumnEnd, width)
			}
		}
	})
}

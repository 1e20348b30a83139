package configloader

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/jandent/pkg/config"
)

func TestConvertArgsJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "args.json")
	writeFile(t, path, `{
  "options": {
    "isConvertArabicNum": true,
    "isUnifyDoubleDash": false,
    "isConvertHarfExclam": false,
    "isShout": true
  },
  "chars": {
    "replaceStrings": {"ｗｗ": "笑", "ｗ": "w", "ａ": "a"},
    "dashs": ["―", "—"],
    "puncs": ["。"],
    "newline": "\r\n"
  },
  "extra": 1
}`)

	result, err := ConvertArgsJSON(path)
	if err != nil {
		t.Fatalf("ConvertArgsJSON() error = %v", err)
	}

	cfg := result.Config
	if cfg.Enabled(config.OptionUnifyDoubleDash) {
		t.Error("expected unify_double_dash disabled")
	}
	if cfg.Enabled(config.OptionConvertHalfExclam) {
		t.Error("expected misspelled legacy key to disable convert_half_exclam")
	}

	entries := cfg.Chars.Replace.Entries()
	wantFrom := []string{"ｗｗ", "ｗ", "ａ"}
	if len(entries) != len(wantFrom) {
		t.Fatalf("expected %d replace entries, got %v", len(wantFrom), entries)
	}
	for i, from := range wantFrom {
		if entries[i].From != from {
			t.Errorf("entry %d: got %q, want %q", i, entries[i].From, from)
		}
	}

	if len(cfg.Chars.Dashes) != 2 {
		t.Errorf("expected dashs mapped to dashes, got %v", cfg.Chars.Dashes)
	}
	if len(cfg.Chars.LeftBrackets) == 0 {
		t.Error("absent tables should keep defaults")
	}
	if cfg.Chars.Newline != "\r\n" {
		t.Errorf("expected CRLF newline, got %q", cfg.Chars.Newline)
	}

	joined := strings.Join(result.Warnings, "\n")
	for _, want := range []string{`"isShout"`, `"extra"`} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected warning mentioning %s, got %v", want, result.Warnings)
		}
	}
}

func TestConvertArgsJSON_JSONC(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "args.jsonc")
	writeFile(t, path, `{
  // toggles
  "options": {"isRemoveTrailingSpaces": false},
  /* tables */
  "chars": {"leaders": ["…"], "replaceStrings": {"//": "／"}}
}`)

	result, err := ConvertArgsJSON(path)
	if err != nil {
		t.Fatalf("ConvertArgsJSON() error = %v", err)
	}
	if result.Config.Enabled(config.OptionRemoveTrailingSpaces) {
		t.Error("expected remove_trailing_spaces disabled")
	}
	if got, _ := result.Config.Chars.Replace.Get("//"); got != "／" {
		t.Errorf("comment stripping must leave strings intact, got %q", got)
	}
}

func TestConvertArgsJSON_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"not json":      `{options: }`,
		"bad replace":   `{"chars": {"replaceStrings": ["a", "b"]}}`,
		"bad tables":    `{"chars": {"puncs": "。"}}`,
		"bad options":   `{"options": []}`,
		"non-string to": `{"chars": {"replaceStrings": {"a": 1}}}`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "args.json")
			writeFile(t, path, content)

			_, err := ConvertArgsJSON(path)
			if !errors.Is(err, ErrMigration) {
				t.Errorf("expected ErrMigration, got %v", err)
			}
		})
	}
}

func TestStripJSONComments(t *testing.T) {
	t.Parallel()

	in := `{"a": "x // y", /* gone */ "b": 1 // trailing
}`
	got := string(stripJSONComments([]byte(in)))
	if strings.Contains(got, "gone") || strings.Contains(got, "trailing") {
		t.Errorf("comments not stripped: %q", got)
	}
	if !strings.Contains(got, `"x // y"`) {
		t.Errorf("string content altered: %q", got)
	}
}

func TestMigrationHeader(t *testing.T) {
	t.Parallel()

	got := MigrationHeader("/some/dir/args.json")
	if !strings.Contains(got, "Migrated from: args.json") {
		t.Errorf("unexpected header %q", got)
	}
}

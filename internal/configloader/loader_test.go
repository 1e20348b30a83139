package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/jandent/pkg/config"
	_ "github.com/yaklabco/jandent/pkg/lint/rules" // Register rules
)

// isolatedOptions loads from dir only. The .git marker stops the upward
// project search.
func isolatedOptions(t *testing.T, dir string) LoadOptions {
	t.Helper()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("create .git: %v", err)
	}
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolatedOptions(t, t.TempDir()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	for _, name := range config.AllOptions() {
		if !cfg.Enabled(name) {
			t.Errorf("expected %s enabled by default", name)
		}
	}
	if got, _ := cfg.Chars.Replace.Get("１"); got != "1" {
		t.Errorf("expected full-width digit entry, got %q", got)
	}
	if got, _ := cfg.Chars.Replace.Get("!"); got != "！" {
		t.Errorf("expected half-width exclamation entry, got %q", got)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	opts := isolatedOptions(t, tmpDir)
	writeFile(t, filepath.Join(tmpDir, ".jandent.yml"), `
options:
  convert_numerals: false
  JD003: false
chars:
  puncs: ["。"]
numeral:
  mode: verbose
`)

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.Enabled(config.OptionConvertNumerals) {
		t.Error("expected convert_numerals disabled")
	}
	if cfg.Enabled(config.OptionUnifyDoubleDash) {
		t.Error("expected JD003 to disable unify_double_dash")
	}
	if _, ok := cfg.Chars.Replace.Get("１"); ok {
		t.Error("disabled numeral conversion must not register digit entries")
	}
	if len(cfg.Chars.Puncs) != 1 || cfg.Chars.Puncs[0] != "。" {
		t.Errorf("expected puncs replaced wholesale, got %v", cfg.Chars.Puncs)
	}
	if len(cfg.Chars.LeftBrackets) == 0 {
		t.Error("absent tables must keep their defaults")
	}
	if cfg.Numeral.Mode != "verbose" {
		t.Errorf("expected numeral mode verbose, got %q", cfg.Numeral.Mode)
	}
	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_TOMLReplaceOrder(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	opts := isolatedOptions(t, tmpDir)
	opts.ExplicitPath = filepath.Join(tmpDir, "custom.toml")
	writeFile(t, opts.ExplicitPath, `
[options]
convert_half_exclam = false
convert_numerals = false

[chars]
replace = [["ab", "x"], ["a", "y"]]
`)

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	entries := result.Config.Chars.Replace.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %v", entries)
	}
	if entries[0].From != "ab" || entries[1].From != "a" {
		t.Errorf("expected document order, got %v", entries)
	}
}

func TestLoad_ExplicitSkipsProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	opts := isolatedOptions(t, tmpDir)
	writeFile(t, filepath.Join(tmpDir, ".jandent.yml"), "numeral:\n  mode: verbose\n")
	opts.ExplicitPath = filepath.Join(tmpDir, "other.yaml")
	writeFile(t, opts.ExplicitPath, "numeral:\n  glyphs: retro\n")

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Numeral.Mode != "simple" {
		t.Errorf("project config should be skipped, got mode %q", result.Config.Numeral.Mode)
	}
	if result.Config.Numeral.Glyphs != "retro" {
		t.Errorf("expected glyphs retro, got %q", result.Config.Numeral.Glyphs)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	opts := isolatedOptions(t, tmpDir)
	writeFile(t, filepath.Join(tmpDir, ".jandent.yml"), "options:\n  remove_trailing_spaces: false\nnumeral:\n  mode: moderate\n")

	opts.CLIConfig = &config.Config{
		Options: map[config.OptionName]bool{config.OptionRemoveTrailingSpaces: true},
		Numeral: config.NumeralConfig{Mode: "dictate"},
		Jobs:    4,
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !result.Config.Enabled(config.OptionRemoveTrailingSpaces) {
		t.Error("CLI should re-enable remove_trailing_spaces")
	}
	if result.Config.Numeral.Mode != "dictate" {
		t.Errorf("expected CLI numeral mode, got %q", result.Config.Numeral.Mode)
	}
	if result.Config.Jobs != 4 {
		t.Errorf("expected jobs 4, got %d", result.Config.Jobs)
	}
}

func TestLoad_UnknownOptionWarns(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	opts := isolatedOptions(t, tmpDir)
	writeFile(t, filepath.Join(tmpDir, ".jandent.yml"), "options:\n  convert_numeral: false\n")

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], `did you mean "convert_numerals"?`) {
		t.Errorf("expected suggestion in warning, got %q", result.Warnings[0])
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{name: "numeral mode", content: "numeral:\n  mode: loud\n", field: "numeral.mode"},
		{name: "encoding", content: "encoding: latin-9\n", field: "encoding"},
		{name: "backup mode", content: "backups:\n  mode: cloud\n", field: "backups.mode"},
		{name: "empty newline", content: "chars:\n  newline: \"\"\n", field: "chars.newline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			opts := isolatedOptions(t, tmpDir)
			writeFile(t, filepath.Join(tmpDir, ".jandent.yml"), tt.content)

			_, err := Load(context.Background(), opts)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected a ValidationError in %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, verr.Field)
			}
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	opts := isolatedOptions(t, tmpDir)
	writeFile(t, filepath.Join(tmpDir, ".jandent.yml"), "chars:\n  replace: [a, b]\n")

	_, err := Load(context.Background(), opts)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if !errors.Is(err, config.ErrInvalidReplaceTable) {
		t.Errorf("expected ErrInvalidReplaceTable in chain, got %v", err)
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := LoadOptions{WorkingDir: t.TempDir(), IgnoreEnv: true}
	if _, err := Load(ctx, opts); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			cfg := config.NewConfig()
			cfg.Chars.Replace.Set("ｗ", "w")
			cfg.Numeral.Mode = "moderate"

			path := filepath.Join(tmpDir, name)
			if err := WriteConfig(cfg, path, "# test\n"); err != nil {
				t.Fatalf("WriteConfig() error = %v", err)
			}

			opts := isolatedOptions(t, tmpDir)
			opts.ExplicitPath = path
			result, err := Load(context.Background(), opts)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if result.Config.Numeral.Mode != "moderate" {
				t.Errorf("expected moderate, got %q", result.Config.Numeral.Mode)
			}
			if got, _ := result.Config.Chars.Replace.Get("ｗ"); got != "w" {
				t.Errorf("expected custom replace entry, got %q", got)
			}
		})
	}
}

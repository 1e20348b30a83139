package configloader

import (
	"testing"

	"github.com/yaklabco/jandent/pkg/config"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Options[config.OptionUnifyDoubleDash] = false
	base.Write = true

	override := &config.Config{
		Options: map[config.OptionName]bool{config.OptionRemoveConsecPunc: false},
		Chars: config.TargetChars{
			Puncs:   []string{"。"},
			Replace: config.NewReplaceTable(config.ReplaceEntry{From: "ａ", To: "a"}),
		},
		Encoding: config.EncodingShiftJIS,
	}

	got := merge(base, override)

	if got.Enabled(config.OptionUnifyDoubleDash) {
		t.Error("base option lost in merge")
	}
	if got.Enabled(config.OptionRemoveConsecPunc) {
		t.Error("override option not applied")
	}
	if len(got.Chars.Puncs) != 1 {
		t.Errorf("expected puncs replaced, got %v", got.Chars.Puncs)
	}
	if len(got.Chars.Dashes) == 0 {
		t.Error("absent table should keep base value")
	}
	if got.Chars.Replace.Len() != 1 {
		t.Errorf("expected replace table replaced wholesale, got %v", got.Chars.Replace.Entries())
	}
	if got.Encoding != config.EncodingShiftJIS {
		t.Errorf("expected encoding override, got %q", got.Encoding)
	}
	if !got.Write {
		t.Error("false override must not unset write")
	}

	if !base.Enabled(config.OptionRemoveConsecPunc) {
		t.Error("merge must not modify base")
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	if MergeAll() != nil {
		t.Error("expected nil for no configs")
	}

	first := config.NewConfig()
	second := &config.Config{Numeral: config.NumeralConfig{Mode: "moderate"}}
	third := &config.Config{Numeral: config.NumeralConfig{Glyphs: "retro"}}

	got := MergeAll(first, second, third)
	if got.Numeral.Mode != "moderate" || got.Numeral.Glyphs != "retro" {
		t.Errorf("unexpected numeral config %+v", got.Numeral)
	}
}

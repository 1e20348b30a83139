package lint_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/lint"
	_ "github.com/yaklabco/jandent/pkg/lint/rules"
)

// onlyOption returns a config with every toggle off except name.
func onlyOption(name config.OptionName) *config.Config {
	cfg := config.NewConfig()
	for _, opt := range config.AllOptions() {
		cfg.SetOption(opt, opt == name)
	}
	return cfg
}

func TestEngineConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "indent", input: "吾輩は猫である。名前はまだ無い。", want: "　吾輩は猫である。名前はまだ無い。\n"},
		{name: "bracket line", input: "「はい。」", want: "「はい」\n"},
		{name: "exclamation then text", input: "えっ！。本当？", want: "　えっ！　本当？\n"},
		{name: "digits with comma", input: "1,234円", want: "　一二三四円\n"},
		{name: "full-width digits", input: "１２３", want: "　一二三\n"},
		{name: "half-width exclamation", input: "すごい!すごい", want: "　すごい！　すごい\n"},
		{name: "trailing spaces", input: "あ　 ", want: "　あ\n"},
		{name: "single dash", input: "あ―い", want: "　あ――い\n"},
		{name: "single leader", input: "あ…", want: "　あ……\n"},
		{name: "repeated small tsu", input: "あっっ", want: "　あっ\n"},
		{name: "repeated comma", input: "はい、、", want: "　はい、\n"},
		{name: "crlf", input: "あ\r\nい\r\n", want: "　あ\n　い\n"},
		{name: "cr", input: "あ\rい", want: "　あ\n　い\n"},
		{name: "blank line kept", input: "あ\n\nい", want: "　あ\n\n　い\n"},
		{name: "empty document", input: "", want: "\n"},
		{name: "space only line", input: "　", want: "\n"},
	}

	engine := lint.NewEngine(nil, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := engine.Convert(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngineConvertIdempotent(t *testing.T) {
	t.Parallel()

	docs := []string{
		"吾輩は猫である。名前はまだ無い。\nどこで生れたかとんと見当がつかぬ。",
		"「はい。」と彼は言った！？そうか…",
		"えっ！、、。本当？　嘘だろ―",
		"ー1,234.56円、１２３個!?\r\n\r\n",
		"！あ",
		" あ！ ",
		"―！。―",
		"あ。。」",
		"っっっをを",
	}

	engine := lint.NewEngine(nil, nil)

	for _, doc := range docs {
		once, err := engine.Convert(doc)
		require.NoError(t, err)

		twice, err := engine.Convert(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input %q", doc)
	}
}

func TestEngineLint(t *testing.T) {
	t.Parallel()

	engine := lint.NewEngine(nil, nil)

	findings, err := engine.Lint("えっ！。本当？\n「はい。」\n")
	require.NoError(t, err)
	require.Len(t, findings, 3)

	assert.Equal(t, lint.Finding{
		Line: 1, ColumnBegin: 0, ColumnEnd: 1, Detected: "え",
		Kind: lint.KindMissingLineHeadSpace, RuleID: "JD001", RuleName: "line-head-indent",
	}, findings[0])
	assert.Equal(t, lint.Finding{
		Line: 1, ColumnBegin: 3, ColumnEnd: 4, Detected: "。",
		Kind: lint.KindSpecificCharAfterOtherSpecificChars, RuleID: "JD006", RuleName: "no-punctuation-after-exclamation",
	}, findings[1])
	assert.Equal(t, lint.Finding{
		Line: 2, ColumnBegin: 3, ColumnEnd: 4, Detected: "。",
		Kind: lint.KindSpecificCharBeforeOtherSpecificChars, RuleID: "JD002", RuleName: "no-punctuation-before-brackets",
	}, findings[2])
}

func TestEngineLintSkipsFormattingSteps(t *testing.T) {
	t.Parallel()

	engine := lint.NewEngine(nil, nil)

	// Digits, half-width marks and trailing spaces are only formatted.
	findings, err := engine.Lint("　123!　 ")
	require.NoError(t, err)
	assert.Empty(t, findings)
	assert.NotNil(t, findings)
}

func TestEngineCleanRoundTrip(t *testing.T) {
	t.Parallel()

	const clean = "　吾輩は猫である。\n「はい」\n　あ――い……\n　えっ！　本当？\n"

	engine := lint.NewEngine(nil, nil)

	findings, err := engine.Lint(clean)
	require.NoError(t, err)
	assert.Empty(t, findings)

	converted, err := engine.Convert(clean)
	require.NoError(t, err)
	assert.Equal(t, clean, converted)
}

func TestEngineLintConvertAgreement(t *testing.T) {
	t.Parallel()

	inputs := map[config.OptionName]string{
		config.OptionInsertLineHeadSpace:       "あ",
		config.OptionRemovePuncBeforeBrackets:  "「あ。」「い、」",
		config.OptionUnifyDoubleDash:           "あ―い―",
		config.OptionUnifyDoubleLeaders:        "…あ‥",
		config.OptionRemoveConsecPunc:          "あ、、い。。。",
		config.OptionRemoveExclamAfterPunc:     "あ！。い？、",
		config.OptionInsertSpaceAfterExclam:    "あ！い？う",
		config.OptionRemoveConsecSpecificChars: "っっをを",
	}

	for name, input := range inputs {
		t.Run(string(name), func(t *testing.T) {
			t.Parallel()

			engine := lint.NewEngine(onlyOption(name), nil)

			findings, err := engine.Lint(input)
			require.NoError(t, err)
			require.Len(t, findings, 2-boolToInt(name == config.OptionInsertLineHeadSpace))

			converted, err := engine.Convert(input)
			require.NoError(t, err)

			// Replaying the findings' spans on the input reproduces convert's edits.
			line := []rune(input)
			out := strings.TrimSuffix(converted, "\n")
			assert.NotEqual(t, input, out)
			for _, f := range findings {
				assert.Equal(t, string(line[f.ColumnBegin:f.ColumnEnd]), f.Detected)
			}

			again, err := engine.Lint(out)
			require.NoError(t, err)
			assert.Empty(t, again)
		})
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestEngineTrailingSpacesNeverReported(t *testing.T) {
	t.Parallel()

	engine := lint.NewEngine(onlyOption(config.OptionRemoveTrailingSpaces), nil)

	findings, err := engine.Lint("あ 　")
	require.NoError(t, err)
	assert.Empty(t, findings)

	converted, err := engine.Convert("あ 　")
	require.NoError(t, err)
	assert.Equal(t, "あ\n", converted)
}

func TestEngineOptionChangesApplyToNextCall(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	engine := lint.NewEngine(cfg, nil)

	got, err := engine.Convert("１!")
	require.NoError(t, err)
	assert.Equal(t, "　一！\n", got)

	cfg.SetOption(config.OptionConvertNumerals, false)
	cfg.SetOption(config.OptionConvertHalfExclam, false)

	got, err = engine.Convert("１!")
	require.NoError(t, err)
	assert.Equal(t, "　１!\n", got)

	cfg.SetOption(config.OptionInsertLineHeadSpace, false)

	got, err = engine.Convert("１!")
	require.NoError(t, err)
	assert.Equal(t, "１!\n", got)
}

func TestEngineNumeralSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode   string
		glyphs string
		want   string
	}{
		{mode: "simple", glyphs: "modern", want: "　一二三四五円\n"},
		{mode: "moderate", glyphs: "modern", want: "　一万二三四五円\n"},
		{mode: "verbose", glyphs: "modern", want: "　一万二千三百四十五円\n"},
		{mode: "dictate", glyphs: "modern", want: "　一二三四五円\n"},
		{mode: "simple", glyphs: "retro", want: "　壱弐参肆伍円\n"},
	}

	for _, tt := range tests {
		t.Run(tt.mode+"/"+tt.glyphs, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			cfg.Numeral = config.NumeralConfig{Mode: tt.mode, Glyphs: tt.glyphs}

			got, err := lint.NewEngine(cfg, nil).Convert("12345円")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngineCustomNewline(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Chars.Newline = "\r\n"

	got, err := lint.NewEngine(cfg, nil).Convert("あ\nい")
	require.NoError(t, err)
	assert.Equal(t, "　あ\r\n　い\r\n", got)
}

func TestEngineReplaceTable(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Chars.Replace.Set("ﾈｺ", "猫")
	cfg.Chars.Replace.Set("猫", "ねこ")

	got, err := lint.NewEngine(cfg, nil).Convert("ﾈｺと猫")
	require.NoError(t, err)
	assert.Equal(t, "　ねことねこ\n", got)
}

func TestEngineErrors(t *testing.T) {
	t.Parallel()

	t.Run("bad character table", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.Chars.Dashes = []string{`\`}
		engine := lint.NewEngine(cfg, nil)

		_, err := engine.Convert("あ")
		require.ErrorIs(t, err, lint.ErrPatternCompile)

		_, err = engine.Lint("あ")
		require.ErrorIs(t, err, lint.ErrPatternCompile)

		// The engine is usable again once the table is fixed.
		cfg.Chars.Dashes = []string{"―"}
		got, err := engine.Convert("あ")
		require.NoError(t, err)
		assert.Equal(t, "　あ\n", got)
	})

	t.Run("bad numeral mode", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.Numeral.Mode = "roman"

		_, err := lint.NewEngine(cfg, nil).Convert("1")
		require.Error(t, err)
	})
}

func TestEngineRun(t *testing.T) {
	t.Parallel()

	engine := lint.NewEngine(nil, nil)

	converted, findings, err := engine.Run("えっ！。本当？")
	require.NoError(t, err)
	assert.Equal(t, "　えっ！　本当？\n", converted)
	assert.Len(t, findings, 2)
}

func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "convert", lint.ModeConvert.String())
	assert.Equal(t, "lint", lint.ModeLint.String())
	assert.Equal(t, "Mode(7)", lint.Mode(7).String())
}

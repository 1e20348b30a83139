package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/jandent/pkg/lint"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{""}},
		{name: "no newline", input: "あ", want: []string{"あ"}},
		{name: "trailing lf", input: "あ\n", want: []string{"あ"}},
		{name: "lf", input: "あ\nい", want: []string{"あ", "い"}},
		{name: "crlf", input: "あ\r\nい\r\n", want: []string{"あ", "い"}},
		{name: "cr", input: "あ\rい", want: []string{"あ", "い"}},
		{name: "mixed", input: "あ\rい\r\nう\nえ", want: []string{"あ", "い", "う", "え"}},
		{name: "blank lines", input: "\n\n", want: []string{"", ""}},
		{name: "lf cr is two newlines", input: "あ\n\rい", want: []string{"あ", "", "い"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lint.SplitLines(tt.input))
		})
	}
}

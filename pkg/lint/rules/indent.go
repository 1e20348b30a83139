package rules

import (
	"slices"

	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/lint"
)

// LineHeadIndentRule requires every paragraph line to open with a
// full-width space unless it opens with whitespace or a left bracket.
type LineHeadIndentRule struct {
	lint.BaseRule
}

// NewLineHeadIndentRule creates a new line head indent rule.
func NewLineHeadIndentRule() *LineHeadIndentRule {
	return &LineHeadIndentRule{
		BaseRule: lint.NewBaseRule(
			"JD001",
			"line-head-indent",
			"Lines should start with a full-width space or a left bracket",
			config.OptionInsertLineHeadSpace,
			lint.KindMissingLineHeadSpace,
			true,
		),
	}
}

// Compile binds the rule to the space and left bracket tables.
func (r *LineHeadIndentRule) Compile(chars config.TargetChars) (lint.Checker, error) {
	return Indent(slices.Concat(chars.Spaces, chars.LeftBrackets))
}

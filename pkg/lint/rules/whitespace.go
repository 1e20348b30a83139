package rules

import (
	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/lint"
)

// TrailingSpacesRule strips spaces at the end of a line. It only formats;
// lint never reports it.
type TrailingSpacesRule struct {
	lint.BaseRule
}

// NewTrailingSpacesRule creates a new trailing spaces rule.
func NewTrailingSpacesRule() *TrailingSpacesRule {
	return &TrailingSpacesRule{
		BaseRule: lint.NewBaseRule(
			"JD009",
			"no-trailing-spaces",
			"Lines should not have trailing spaces",
			config.OptionRemoveTrailingSpaces,
			"",
			false,
		),
	}
}

// Compile binds the rule to the space table.
func (r *TrailingSpacesRule) Compile(chars config.TargetChars) (lint.Checker, error) {
	return Trailing(chars.Spaces)
}

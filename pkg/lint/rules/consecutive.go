package rules

import (
	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/lint"
)

// NoConsecutiveCharsRule collapses a character from the forbid table that
// repeats itself, such as "っっ". Different characters side by side are fine.
type NoConsecutiveCharsRule struct {
	lint.BaseRule
}

// NewNoConsecutiveCharsRule creates a new rule.
func NewNoConsecutiveCharsRule() *NoConsecutiveCharsRule {
	return &NoConsecutiveCharsRule{
		BaseRule: lint.NewBaseRule(
			"JD008",
			"no-consecutive-chars",
			"Listed characters should not repeat",
			config.OptionRemoveConsecSpecificChars,
			lint.KindConsecutiveSpecificChar,
			true,
		),
	}
}

// Compile binds the rule to the forbid table.
func (r *NoConsecutiveCharsRule) Compile(chars config.TargetChars) (lint.Checker, error) {
	return Consecutive(chars.ForbidConsecChars, false)
}

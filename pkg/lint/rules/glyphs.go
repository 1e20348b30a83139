package rules

import (
	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/lint"
)

// DoubleDashRule requires dashes to be written in pairs.
type DoubleDashRule struct {
	lint.BaseRule
}

// NewDoubleDashRule creates a new double dash rule.
func NewDoubleDashRule() *DoubleDashRule {
	return &DoubleDashRule{
		BaseRule: lint.NewBaseRule(
			"JD003",
			"double-dash",
			"Dashes should be doubled",
			config.OptionUnifyDoubleDash,
			lint.KindSingleUsedSpecificChar,
			true,
		),
	}
}

// Compile binds the rule to the dash table.
func (r *DoubleDashRule) Compile(chars config.TargetChars) (lint.Checker, error) {
	return Unify(chars.Dashes)
}

// DoubleLeadersRule requires leaders (ellipses) to be written in pairs.
type DoubleLeadersRule struct {
	lint.BaseRule
}

// NewDoubleLeadersRule creates a new double leaders rule.
func NewDoubleLeadersRule() *DoubleLeadersRule {
	return &DoubleLeadersRule{
		BaseRule: lint.NewBaseRule(
			"JD004",
			"double-leaders",
			"Leaders should be doubled",
			config.OptionUnifyDoubleLeaders,
			lint.KindSingleUsedSpecificChar,
			true,
		),
	}
}

// Compile binds the rule to the leader table.
func (r *DoubleLeadersRule) Compile(chars config.TargetChars) (lint.Checker, error) {
	return Unify(chars.Leaders)
}

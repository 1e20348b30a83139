package rules

import (
	"slices"

	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/lint"
)

// NoPunctuationBeforeBracketsRule removes punctuation that closes a quote
// right before the bracket, as in "はい。」".
type NoPunctuationBeforeBracketsRule struct {
	lint.BaseRule
}

// NewNoPunctuationBeforeBracketsRule creates a new rule.
func NewNoPunctuationBeforeBracketsRule() *NoPunctuationBeforeBracketsRule {
	return &NoPunctuationBeforeBracketsRule{
		BaseRule: lint.NewBaseRule(
			"JD002",
			"no-punctuation-before-brackets",
			"Punctuation should not precede a right bracket",
			config.OptionRemovePuncBeforeBrackets,
			lint.KindSpecificCharBeforeOtherSpecificChars,
			true,
		),
	}
}

// Compile binds the rule to the right bracket and punctuation tables.
func (r *NoPunctuationBeforeBracketsRule) Compile(chars config.TargetChars) (lint.Checker, error) {
	return RemoveBefore(chars.RightBrackets, chars.Puncs)
}

// NoConsecutivePunctuationRule collapses any run of punctuation to its
// first mark.
type NoConsecutivePunctuationRule struct {
	lint.BaseRule
}

// NewNoConsecutivePunctuationRule creates a new rule.
func NewNoConsecutivePunctuationRule() *NoConsecutivePunctuationRule {
	return &NoConsecutivePunctuationRule{
		BaseRule: lint.NewBaseRule(
			"JD005",
			"no-consecutive-punctuation",
			"Punctuation marks should not be repeated",
			config.OptionRemoveConsecPunc,
			lint.KindConsecutiveSpecificChar,
			true,
		),
	}
}

// Compile binds the rule to the punctuation table.
func (r *NoConsecutivePunctuationRule) Compile(chars config.TargetChars) (lint.Checker, error) {
	return Consecutive(chars.Puncs, true)
}

// NoPunctuationAfterExclamationRule removes punctuation written after an
// exclamation or question mark, as in "えっ！。".
type NoPunctuationAfterExclamationRule struct {
	lint.BaseRule
}

// NewNoPunctuationAfterExclamationRule creates a new rule.
func NewNoPunctuationAfterExclamationRule() *NoPunctuationAfterExclamationRule {
	return &NoPunctuationAfterExclamationRule{
		BaseRule: lint.NewBaseRule(
			"JD006",
			"no-punctuation-after-exclamation",
			"Punctuation should not follow an exclamation or question mark",
			config.OptionRemoveExclamAfterPunc,
			lint.KindSpecificCharAfterOtherSpecificChars,
			true,
		),
	}
}

// Compile binds the rule to the exclamation and punctuation tables.
func (r *NoPunctuationAfterExclamationRule) Compile(chars config.TargetChars) (lint.Checker, error) {
	return RemoveAfter(chars.Exclams, chars.Puncs)
}

// SpaceAfterExclamationRule requires a full-width space after an
// exclamation or question mark that continues the sentence.
type SpaceAfterExclamationRule struct {
	lint.BaseRule
}

// NewSpaceAfterExclamationRule creates a new rule.
func NewSpaceAfterExclamationRule() *SpaceAfterExclamationRule {
	return &SpaceAfterExclamationRule{
		BaseRule: lint.NewBaseRule(
			"JD007",
			"space-after-exclamation",
			"Exclamation and question marks should be followed by a full-width space",
			config.OptionInsertSpaceAfterExclam,
			lint.KindSpecificCharAfterDisallowedChar,
			true,
		),
	}
}

// Compile binds the rule to the exclamation table. Runs that end the line
// or precede a right bracket, a space, or punctuation are left alone.
func (r *SpaceAfterExclamationRule) Compile(chars config.TargetChars) (lint.Checker, error) {
	excluded := slices.Concat(chars.RightBrackets, chars.Spaces, chars.Puncs)
	return InsertAfter(chars.Exclams, excluded, config.FullWidthSpace, true)
}

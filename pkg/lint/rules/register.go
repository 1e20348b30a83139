package rules

import "github.com/yaklabco/jandent/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
// Rule IDs sort in pipeline order.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewLineHeadIndentRule())                // JD001
	registry.Register(NewNoPunctuationBeforeBracketsRule())   // JD002
	registry.Register(NewDoubleDashRule())                    // JD003
	registry.Register(NewDoubleLeadersRule())                 // JD004
	registry.Register(NewNoConsecutivePunctuationRule())      // JD005
	registry.Register(NewNoPunctuationAfterExclamationRule()) // JD006
	registry.Register(NewSpaceAfterExclamationRule())         // JD007
	registry.Register(NewNoConsecutiveCharsRule())            // JD008
	registry.Register(NewTrailingSpacesRule())                // JD009
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
}

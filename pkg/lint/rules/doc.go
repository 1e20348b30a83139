// Package rules provides the built-in jandent rules.
//
// Each rule is one text primitive bound to a character table and gated by a
// single option. Convert applies them to every line in ID order:
//
//   - JD001: line-head-indent - Lines should start with a full-width space or a left bracket
//   - JD002: no-punctuation-before-brackets - Punctuation should not precede a right bracket
//   - JD003: double-dash - Dashes should be doubled
//   - JD004: double-leaders - Leaders should be doubled
//   - JD005: no-consecutive-punctuation - Punctuation marks should not be repeated
//   - JD006: no-punctuation-after-exclamation - Punctuation should not follow an exclamation mark
//   - JD007: space-after-exclamation - Exclamation marks should be followed by a full-width space
//   - JD008: no-consecutive-chars - Listed characters should not repeat
//   - JD009: no-trailing-spaces - Lines should not have trailing spaces
//
// JD009 only formats and is never reported by lint.
//
// # Character tables
//
// Table entries are spliced into regular expression character classes.
// Only "." is escaped; entries containing other metacharacters such as
// "]", "^", "-" or "\" are not supported.
//
// # Registration
//
// Rules are registered with lint.DefaultRegistry on import. Programs that
// build an engine only need a blank import of this package.
package rules

package configloader

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/fsutil"
	"github.com/yaklabco/jandent/pkg/numeral"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "numeral.mode").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown option names).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) addError(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) addWarning(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:    true,
	config.FormatJSON:    true,
	config.FormatDiff:    true,
	config.FormatSummary: true,
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownRuleFormats = map[config.RuleFormat]bool{
	config.RuleFormatName:     true,
	config.RuleFormatID:       true,
	config.RuleFormatCombined: true,
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownBackupModes = map[string]bool{
	"sidecar": true,
	"none":    true,
}

// Validate checks a merged configuration for errors.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if _, err := numeral.ParseMode(cfg.Numeral.Mode); err != nil {
		result.addError("numeral.mode", cfg.Numeral.Mode,
			"invalid numeral mode %q; must be one of: simple, moderate, verbose, dictate", cfg.Numeral.Mode)
	}
	if _, err := numeral.ParseGlyphs(cfg.Numeral.Glyphs); err != nil {
		result.addError("numeral.glyphs", cfg.Numeral.Glyphs,
			"invalid numeral glyphs %q; must be one of: modern, retro", cfg.Numeral.Glyphs)
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.addError("format", cfg.Format,
			"invalid format %q; must be one of: text, json, summary, diff", cfg.Format)
	}
	if cfg.RuleFormat != "" && !knownRuleFormats[cfg.RuleFormat] {
		result.addError("rule_format", cfg.RuleFormat,
			"invalid rule format %q; must be one of: name, id, combined", cfg.RuleFormat)
	}

	if _, err := fsutil.CanonicalEncoding(cfg.Encoding); err != nil {
		result.addError("encoding", cfg.Encoding,
			"invalid encoding %q; must be one of: %s", cfg.Encoding, strings.Join(fsutil.Encodings(), ", "))
	}

	if cfg.Jobs < 0 {
		result.addError("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if cfg.Backups.Mode != "" && !knownBackupModes[cfg.Backups.Mode] {
		result.addError("backups.mode", cfg.Backups.Mode,
			"invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode)
	}

	if cfg.Chars.Newline == "" {
		result.addError("chars.newline", cfg.Chars.Newline, "newline must not be empty")
	}

	validateChars(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateChars warns about table entries that would not match literally
// inside the character class they are placed in.
func validateChars(cfg *config.Config, result *ValidationResult) {
	tables := []struct {
		field   string
		entries []string
	}{
		{"chars.forbid_consec_chars", cfg.Chars.ForbidConsecChars},
		{"chars.left_brackets", cfg.Chars.LeftBrackets},
		{"chars.right_brackets", cfg.Chars.RightBrackets},
		{"chars.puncs", cfg.Chars.Puncs},
		{"chars.exclams", cfg.Chars.Exclams},
		{"chars.dashes", cfg.Chars.Dashes},
		{"chars.leaders", cfg.Chars.Leaders},
		{"chars.spaces", cfg.Chars.Spaces},
	}

	for _, table := range tables {
		for i, entry := range table.entries {
			if entry == "" {
				result.addWarning(fmt.Sprintf("%s[%d]", table.field, i), entry, "empty entry has no effect")
				continue
			}
			if strings.ContainsAny(entry, `]\^-`) {
				result.addWarning(fmt.Sprintf("%s[%d]", table.field, i), entry,
					"entry %q contains a character-class metacharacter and may not match literally", entry)
			}
		}
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// filepath.Match returns an error only for malformed patterns.
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.addError(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}
}

// unknownOptionWarnings builds a warning per unresolvable option key, with a
// suggestion when one is close.
func unknownOptionWarnings(keys []string, source string) []ValidationError {
	slices.Sort(keys)

	warnings := make([]ValidationError, 0, len(keys))
	for _, key := range keys {
		msg := fmt.Sprintf("unknown option %q; it will be ignored", key)
		if suggestion := SuggestOption(key); suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		warnings = append(warnings, ValidationError{
			Field:    "options." + key,
			Value:    key,
			Message:  msg,
			FilePath: source,
		})
	}
	return warnings
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return knownFormats[f]
}

// IsValidBackupMode returns true if the backup mode is valid.
func IsValidBackupMode(mode string) bool {
	return knownBackupModes[mode]
}

// Package config defines core configuration types for jandent.
// These types are pure data structures; loading and layering live in internal/configloader.
package config

// OptionName identifies one rule toggle.
type OptionName string

const (
	OptionConvertNumerals           OptionName = "convert_numerals"
	OptionInsertLineHeadSpace       OptionName = "insert_line_head_space"
	OptionRemovePuncBeforeBrackets  OptionName = "remove_punc_before_brackets"
	OptionUnifyDoubleDash           OptionName = "unify_double_dash"
	OptionUnifyDoubleLeaders        OptionName = "unify_double_leaders"
	OptionRemoveConsecPunc          OptionName = "remove_consec_punc"
	OptionRemoveExclamAfterPunc     OptionName = "remove_exclam_after_punc"
	OptionInsertSpaceAfterExclam    OptionName = "insert_space_after_exclam"
	OptionRemoveTrailingSpaces      OptionName = "remove_trailing_spaces"
	OptionRemoveConsecSpecificChars OptionName = "remove_consec_specific_chars"
	OptionConvertHalfExclam         OptionName = "convert_half_exclam"
)

// AllOptions returns every known toggle in declaration order.
func AllOptions() []OptionName {
	return []OptionName{
		OptionConvertNumerals,
		OptionInsertLineHeadSpace,
		OptionRemovePuncBeforeBrackets,
		OptionUnifyDoubleDash,
		OptionUnifyDoubleLeaders,
		OptionRemoveConsecPunc,
		OptionRemoveExclamAfterPunc,
		OptionInsertSpaceAfterExclam,
		OptionRemoveTrailingSpaces,
		OptionRemoveConsecSpecificChars,
		OptionConvertHalfExclam,
	}
}

// IsKnown reports whether the option name is one of AllOptions.
func (o OptionName) IsKnown() bool {
	for _, known := range AllOptions() {
		if o == known {
			return true
		}
	}
	return false
}

// BackupsConfig controls backup behavior when rewriting files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Mode    string `yaml:"mode" toml:"mode"` // "sidecar" or "none"
}

// NumeralConfig selects how digit runs are rendered.
type NumeralConfig struct {
	// Mode is one of simple, moderate, verbose, dictate.
	Mode string `yaml:"mode" toml:"mode"`

	// Glyphs is modern or retro.
	Glyphs string `yaml:"glyphs" toml:"glyphs"`
}

// OutputFormat specifies the output format for findings.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "double-dash"
	RuleFormatID       RuleFormat = "id"       // "JD003"
	RuleFormatCombined RuleFormat = "combined" // "JD003/double-dash"
)

// Label renders a rule identifier in format f. Unknown formats and rules
// without a name fall back to the name and the ID respectively.
func (f RuleFormat) Label(ruleID, ruleName string) string {
	switch {
	case ruleName == "" || f == RuleFormatID:
		return ruleID
	case f == RuleFormatCombined:
		return ruleID + "/" + ruleName
	default:
		return ruleName
	}
}

// Encoding names accepted for input and output files.
const (
	EncodingUTF8      = "utf-8"
	EncodingShiftJIS  = "shift_jis"
	EncodingEUCJP     = "euc-jp"
	EncodingISO2022JP = "iso-2022-jp"
)

// Config is the root configuration structure for jandent.
type Config struct {
	// Options holds rule toggles. Absent keys fall back to DefaultOption.
	Options map[OptionName]bool `yaml:"options" toml:"options"`

	// Chars holds the character tables rules are parameterized with.
	Chars TargetChars `yaml:"chars" toml:"chars"`

	// Numeral configures digit conversion.
	Numeral NumeralConfig `yaml:"numeral" toml:"numeral"`

	// Extensions lists file extensions picked up during directory discovery.
	Extensions []string `yaml:"extensions,omitempty" toml:"extensions,omitempty"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore,omitempty"`

	// Encoding is the text encoding of input files.
	Encoding string `yaml:"encoding" toml:"encoding"`

	// Backups configures backup behavior when writing.
	Backups BackupsConfig `yaml:"backups" toml:"backups"`

	// CLI-level options (not persisted to config files).

	// Write rewrites files in place with converted output.
	Write bool `yaml:"-" toml:"-"`

	// DryRun shows what would change without writing.
	DryRun bool `yaml:"-" toml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-" toml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"-" toml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-" toml:"-"`

	// NoBackups disables backup creation when writing.
	NoBackups bool `yaml:"-" toml:"-"`

	observers []OptionObserver
}

// NewConfig returns a Config with every toggle on, the default tables,
// and the derived replace-table entries registered.
func NewConfig() *Config {
	cfg := &Config{
		Options: make(map[OptionName]bool, len(AllOptions())),
		Chars:   DefaultTargetChars(),
		Numeral: NumeralConfig{
			Mode:   "simple",
			Glyphs: "modern",
		},
		Extensions: []string{".txt", ".md"},
		Encoding:   EncodingUTF8,
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Format:     FormatText,
		RuleFormat: RuleFormatName,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
	for _, name := range AllOptions() {
		cfg.Options[name] = DefaultOption(name)
	}
	cfg.installDefaultObservers()
	cfg.SyncReplaceTable()
	return cfg
}

// DefaultOption returns the built-in value of a toggle.
func DefaultOption(_ OptionName) bool {
	return true
}

// Enabled reports whether a toggle is on.
func (c *Config) Enabled(name OptionName) bool {
	if v, ok := c.Options[name]; ok {
		return v
	}
	return DefaultOption(name)
}

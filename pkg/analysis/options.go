package analysis

import "github.com/yaklabco/jandent/pkg/config"

// SortField specifies how to sort analysis results.
type SortField string

const (
	// SortByCount sorts by finding count (descending by default).
	SortByCount SortField = "count"
	// SortByAlpha sorts by path, rule ID or kind.
	SortByAlpha SortField = "alpha"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	return s == SortByCount || s == SortByAlpha
}

// Options configures the Analyze function.
type Options struct {
	// IncludeFindings includes the flat findings list.
	IncludeFindings bool

	IncludeByFile bool
	IncludeByRule bool
	IncludeByKind bool

	// SortBy specifies how to sort the grouped views.
	SortBy SortField

	// SortDesc sorts counts highest first.
	SortDesc bool

	// RuleFormat controls how rule identifiers appear.
	RuleFormat config.RuleFormat

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with every view and count-descending order.
func DefaultOptions() Options {
	return Options{
		IncludeFindings: true,
		IncludeByFile:   true,
		IncludeByRule:   true,
		IncludeByKind:   true,
		SortBy:          SortByCount,
		SortDesc:        true,
		RuleFormat:      config.RuleFormatName,
	}
}

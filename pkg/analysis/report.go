package analysis

import (
	"time"

	"github.com/yaklabco/jandent/pkg/lint"
)

// Report holds the views of a run that renderers draw from.
// Analyze computes it once.
type Report struct {
	Findings []FindingEntry `json:"findings,omitempty"`
	ByFile   []FileAnalysis `json:"byFile,omitempty"`
	ByRule   []RuleAnalysis `json:"byRule,omitempty"`
	ByKind   []KindAnalysis `json:"byKind,omitempty"`
	Totals   Totals         `json:"summary"`

	// Version is the report format version.
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// FindingEntry is one finding with the file it came from.
type FindingEntry struct {
	FilePath    string    `json:"filePath"`
	Line        int       `json:"line"`
	ColumnBegin int       `json:"columnBegin"`
	ColumnEnd   int       `json:"columnEnd"`
	Detected    string    `json:"detected"`
	Kind        lint.Kind `json:"kind"`
	RuleID      string    `json:"ruleId"`
	RuleName    string    `json:"ruleName"`
	Message     string    `json:"message"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files           int `json:"filesChecked"`
	FilesWithIssues int `json:"filesWithIssues"`
	FilesModified   int `json:"filesModified"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesErrored    int `json:"filesErrored"`
	Findings        int `json:"totalFindings"`
}

// HasIssues returns true if there are any findings.
func (t Totals) HasIssues() bool {
	return t.Findings > 0
}

// FileAnalysis aggregates one file.
type FileAnalysis struct {
	Path     string   `json:"path"`
	Findings int      `json:"findings"`
	Rules    []string `json:"rules,omitempty"`
}

// RuleAnalysis aggregates one rule.
type RuleAnalysis struct {
	RuleID   string    `json:"ruleId"`
	RuleName string    `json:"ruleName"`
	Kind     lint.Kind `json:"kind"`
	Findings int       `json:"findings"`
	Files    []string  `json:"files,omitempty"`
}

// KindAnalysis aggregates one finding kind.
type KindAnalysis struct {
	Kind     lint.Kind `json:"kind"`
	Message  string    `json:"message"`
	Findings int       `json:"findings"`
}

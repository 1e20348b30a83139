// Package lint provides the rule engine, findings, and registry for jandent.
package lint

import (
	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/fix"
)

// Violation is one rule match on a line together with the edits that repair it.
// Begin and End are rune offsets into the checked line.
type Violation struct {
	Begin    int
	End      int
	Detected string
	Edits    []fix.TextEdit
}

// Checker finds violations of one rule on a single line.
// Implementations must be pure: the same line always yields the same violations.
type Checker interface {
	Check(line []rune) ([]Violation, error)
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(line []rune) ([]Violation, error)

// Check calls f.
func (f CheckerFunc) Check(line []rune) ([]Violation, error) {
	return f(line)
}

// Rule defines the interface that all rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "JD001").
	// IDs sort in pipeline order.
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// Option returns the toggle that gates the rule.
	Option() config.OptionName

	// Kind returns the kind of finding the rule reports.
	Kind() Kind

	// Reports returns false for formatting-only rules that lint never reports.
	Reports() bool

	// Compile binds the rule to character tables.
	Compile(chars config.TargetChars) (Checker, error)
}

// Fix returns line with every violation found by checker repaired.
func Fix(checker Checker, line string) (string, error) {
	runes := []rune(line)
	violations, err := checker.Check(runes)
	if err != nil {
		return "", err
	}
	if len(violations) == 0 {
		return line, nil
	}

	var edits []fix.TextEdit
	for _, v := range violations {
		edits = append(edits, v.Edits...)
	}
	return fix.Apply(line, edits)
}

// Report returns one finding per violation found by checker, in scan order.
func Report(checker Checker, rule Rule, line string, lineNumber int) ([]Finding, error) {
	violations, err := checker.Check([]rune(line))
	if err != nil {
		return nil, err
	}

	findings := make([]Finding, 0, len(violations))
	for _, v := range violations {
		findings = append(findings, Finding{
			Line:        lineNumber,
			ColumnBegin: v.Begin,
			ColumnEnd:   v.End,
			Detected:    v.Detected,
			Kind:        rule.Kind(),
			RuleID:      rule.ID(),
			RuleName:    rule.Name(),
		})
	}
	return findings, nil
}

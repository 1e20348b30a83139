package lint

import (
	"fmt"
	"strings"
)

// Mode selects what a document pass produces.
type Mode int

const (
	// ModeConvert rewrites the document.
	ModeConvert Mode = iota
	// ModeLint reports findings without rewriting.
	ModeLint
)

func (m Mode) String() string {
	switch m {
	case ModeConvert:
		return "convert"
	case ModeLint:
		return "lint"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// RunState is the state of one document pass. A fresh value is created for
// every call and passed down explicitly; nothing is kept between calls.
type RunState struct {
	Mode Mode

	// Line is the 1-based number of the line being processed.
	Line int
}

// Result is the outcome of one document pass. Text is set in ModeConvert,
// Findings in ModeLint.
type Result struct {
	Mode     Mode
	Text     string
	Findings []Finding
}

// SplitLines splits a document on "\r\n", "\r" or "\n". A newline at the
// very end terminates the last line rather than starting an empty one.
// The empty document is a single empty line.
func SplitLines(document string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(document); i++ {
		switch document[i] {
		case '\n':
			lines = append(lines, document[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, document[start:i])
			if i+1 < len(document) && document[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(document) || len(lines) == 0 {
		lines = append(lines, document[start:])
	}
	return lines
}

// processDocument drives the line pipeline over every line of document.
func processDocument(document string, set *ruleSet, state *RunState) (*Result, error) {
	lines := SplitLines(document)

	switch state.Mode {
	case ModeConvert:
		var out strings.Builder
		out.Grow(len(document) + len(lines)*(len(set.newline)+3))
		for i, line := range lines {
			state.Line = i + 1
			converted, err := set.convertLine(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", state.Line, err)
			}
			out.WriteString(converted)
			out.WriteString(set.newline)
		}
		return &Result{Mode: ModeConvert, Text: out.String()}, nil

	case ModeLint:
		findings := make([]Finding, 0)
		for i, line := range lines {
			state.Line = i + 1
			found, err := set.lintLine(line, state)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", state.Line, err)
			}
			findings = append(findings, found...)
		}
		return &Result{Mode: ModeLint, Findings: findings}, nil

	default:
		return nil, fmt.Errorf("%w: unknown mode %s", ErrUnexpectedResult, state.Mode)
	}
}

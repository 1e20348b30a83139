package rules

import (
	"github.com/dlclark/regexp2"

	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/fix"
	"github.com/yaklabco/jandent/pkg/lint"
	"github.com/yaklabco/jandent/pkg/scan"
)

// noop is the checker used when a rule's character table is empty.
var noop = lint.CheckerFunc(func([]rune) ([]lint.Violation, error) {
	return nil, nil
})

// scanner runs a compiled pattern over a line and turns each accepted
// match into a violation.
type scanner struct {
	re      *regexp2.Regexp
	exclude *regexp2.Regexp
	build   func(line []rune, m scan.Match) lint.Violation
}

func (s *scanner) Check(line []rune) ([]lint.Violation, error) {
	matches, err := scan.All(s.re, line, s.exclude)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}

	violations := make([]lint.Violation, 0, len(matches))
	for _, m := range matches {
		violations = append(violations, s.build(line, m))
	}
	return violations, nil
}

func newScanner(pattern, exclude string, build func([]rune, scan.Match) lint.Violation) (lint.Checker, error) {
	re, err := scan.Compile(pattern)
	if err != nil {
		return nil, err
	}

	s := &scanner{re: re, build: build}
	if exclude != "" {
		s.exclude, err = scan.Compile(exclude)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Indent prepends a full-width space to lines that do not open with one of
// the given characters. Empty lines are left alone.
func Indent(allowed []string) (lint.Checker, error) {
	pattern := "^."
	if class := scan.Class(allowed); class != "" {
		pattern = "^[^" + class + "]"
	}

	return newScanner(pattern, "", func(_ []rune, m scan.Match) lint.Violation {
		span := m.Span()
		return lint.Violation{
			Begin:    span.Begin,
			End:      span.End,
			Detected: m.Text,
			Edits:    fix.NewEditBuilder().Insert(0, config.FullWidthSpace).Edits(),
		}
	})
}

// Unify doubles every glyph from chars that stands alone. Runs of two or
// more are left as they are, whatever their composition.
func Unify(chars []string) (lint.Checker, error) {
	class := scan.Class(chars)
	if class == "" {
		return noop, nil
	}

	pattern := "[" + class + "]+"
	exclude := "[" + class + "]{2,}"
	return newScanner(pattern, exclude, func(_ []rune, m scan.Match) lint.Violation {
		span := m.Span()
		return lint.Violation{
			Begin:    span.Begin,
			End:      span.End,
			Detected: m.Text,
			Edits:    fix.NewEditBuilder().Insert(span.End, m.Text).Edits(),
		}
	})
}

// Consecutive collapses runs of characters from chars to their first
// character. In strict mode any run of two or more counts; otherwise only
// a character repeating itself does.
func Consecutive(chars []string, strict bool) (lint.Checker, error) {
	class := scan.Class(chars)
	if class == "" {
		return noop, nil
	}

	pattern := "([" + class + `])\1+`
	if strict {
		pattern = "[" + class + "]{2,}"
	}
	return newScanner(pattern, "", func(_ []rune, m scan.Match) lint.Violation {
		span := m.Span()
		return lint.Violation{
			Begin:    span.Begin,
			End:      span.End,
			Detected: m.Text,
			Edits:    fix.NewEditBuilder().Delete(span.Begin+1, span.End).Edits(),
		}
	})
}

// RemoveAfter deletes every run of victims that directly follows a run of
// triggers.
func RemoveAfter(triggers, victims []string) (lint.Checker, error) {
	return removeAdjacent(triggers, victims, true)
}

// RemoveBefore deletes every run of victims that directly precedes a run
// of triggers.
func RemoveBefore(triggers, victims []string) (lint.Checker, error) {
	return removeAdjacent(triggers, victims, false)
}

func removeAdjacent(triggers, victims []string, after bool) (lint.Checker, error) {
	trigger, victim := scan.Class(triggers), scan.Class(victims)
	if trigger == "" || victim == "" {
		return noop, nil
	}

	pattern := "([" + victim + "]+)([" + trigger + "]+)"
	group := 0
	if after {
		pattern = "([" + trigger + "]+)([" + victim + "]+)"
		group = 1
	}

	return newScanner(pattern, "", func(line []rune, m scan.Match) lint.Violation {
		span := m.Groups[group]
		return lint.Violation{
			Begin:    span.Begin,
			End:      span.End,
			Detected: string(line[span.Begin:span.End]),
			Edits:    fix.NewEditBuilder().Delete(span.Begin, span.End).Edits(),
		}
	})
}

// InsertAfter inserts text after every maximal run of chars, unless the run
// is followed by one of excluded, or ends the line while excludeLineEnd is set.
// The violation covers the run and the character after it, if any.
func InsertAfter(chars, excluded []string, text string, excludeLineEnd bool) (lint.Checker, error) {
	class := scan.Class(chars)
	if class == "" || text == "" {
		return noop, nil
	}

	// The atomic group keeps a failed lookahead from shortening the run.
	pattern := "(?>[" + class + "]+)"
	if ex := scan.Class(excluded); ex != "" {
		pattern += "(?![" + ex + "])"
	}
	if excludeLineEnd {
		pattern += "(?!$)"
	}

	return newScanner(pattern, "", func(line []rune, m scan.Match) lint.Violation {
		runEnd := m.Index + m.Length
		end := min(runEnd+1, len(line))
		return lint.Violation{
			Begin:    m.Index,
			End:      end,
			Detected: string(line[m.Index:end]),
			Edits:    fix.NewEditBuilder().Insert(runEnd, text).Edits(),
		}
	})
}

// Trailing strips any run of spaces at the end of the line.
func Trailing(spaces []string) (lint.Checker, error) {
	class := scan.Class(spaces)
	if class == "" {
		return noop, nil
	}

	return newScanner("["+class+"]+$", "", func(_ []rune, m scan.Match) lint.Violation {
		span := m.Span()
		return lint.Violation{
			Begin:    span.Begin,
			End:      span.End,
			Detected: m.Text,
			Edits:    fix.NewEditBuilder().Delete(span.Begin, span.End).Edits(),
		}
	})
}

package scan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// ErrCompile is returned when a pattern built from a character table does not compile.
var ErrCompile = errors.New("compile pattern")

// Span is a half-open rune range within a line.
type Span struct {
	Begin int
	End   int
}

// Match is one accepted match.
type Match struct {
	// Text is the matched substring.
	Text string

	// Index is the rune offset of the match within the line.
	Index int

	// Length is the rune length of the match.
	Length int

	// Groups holds the spans of numbered capture groups, starting at group 1.
	// Groups that did not participate have a zero span.
	Groups []Span
}

// Span returns the range covered by the whole match.
func (m Match) Span() Span {
	return Span{Begin: m.Index, End: m.Index + m.Length}
}

// Compile compiles a pattern with the options every rule uses.
func Compile(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCompile, pattern, err)
	}
	return re, nil
}

// All returns every non-overlapping leftmost match of re in line, left to right.
// When exclude is non-nil, a candidate whose text matches exclude anywhere is
// dropped. A zero-length match still advances the scan by one rune.
func All(re *regexp2.Regexp, line []rune, exclude *regexp2.Regexp) ([]Match, error) {
	var matches []Match

	pos := 0
	for pos <= len(line) {
		m, err := re.FindRunesMatchStartingAt(line, pos)
		if err != nil {
			return nil, fmt.Errorf("scan line: %w", err)
		}
		if m == nil {
			break
		}

		next := m.Index + m.Length
		if m.Length == 0 {
			next++
		}
		pos = next

		text := m.String()
		if exclude != nil {
			skip, err := exclude.MatchString(text)
			if err != nil {
				return nil, fmt.Errorf("test exclusion: %w", err)
			}
			if skip {
				continue
			}
		}

		matches = append(matches, Match{
			Text:   text,
			Index:  m.Index,
			Length: m.Length,
			Groups: groupSpans(m),
		})
	}

	return matches, nil
}

func groupSpans(m *regexp2.Match) []Span {
	groups := m.Groups()
	if len(groups) <= 1 {
		return nil
	}
	spans := make([]Span, 0, len(groups)-1)
	for _, g := range groups[1:] {
		if len(g.Captures) == 0 {
			spans = append(spans, Span{})
			continue
		}
		spans = append(spans, Span{Begin: g.Index, End: g.Index + g.Length})
	}
	return spans
}

// Class builds a character class body from table entries. A literal "."
// is escaped; every other entry is used verbatim.
func Class(chars []string) string {
	var b strings.Builder
	for _, c := range chars {
		if c == "." {
			b.WriteString(`\.`)
			continue
		}
		b.WriteString(c)
	}
	return b.String()
}

package pretty

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/lint"
)

// sourceIndent aligns source context under the finding line.
const sourceIndent = "        "

// FormatFinding formats a single finding for terminal output.
//
// Columns are printed 1-based. sourceLine is the unmodified line the finding
// was detected on; an empty string suppresses the context block.
func (s *Styles) FormatFinding(f lint.Finding, sourceLine string, ruleFormat config.RuleFormat) string {
	var builder strings.Builder

	location := s.Location.Render(fmt.Sprintf("%d:%d", f.Line, f.ColumnBegin+1))
	ruleDisplay := s.RuleID.Render("(" + ruleFormat.Label(f.RuleID, f.RuleName) + ")")

	fmt.Fprintf(&builder, "  %s  %s  %s  %s  %s\n",
		location,
		s.Kind.Render(string(f.Kind)),
		s.Detected.Render(quoteDetected(f.Detected)),
		s.Message.Render(f.Message()),
		ruleDisplay,
	)

	if sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, f.ColumnBegin, f.ColumnEnd))
	}

	return builder.String()
}

// FormatSourceContext renders the line with carets under the rune span
// [begin, end). Padding follows terminal cell widths so the carets line up
// under full-width characters.
func (s *Styles) FormatSourceContext(line string, begin, end int) string {
	var builder strings.Builder

	builder.WriteString(sourceIndent + s.SourceLine.Render(line) + "\n")

	runes := []rune(line)
	if begin < 0 || begin > len(runes) {
		return builder.String()
	}
	end = min(max(end, begin), len(runes))

	pad := runewidth.StringWidth(string(runes[:begin]))
	width := max(runewidth.StringWidth(string(runes[begin:end])), 1)

	builder.WriteString(sourceIndent + strings.Repeat(" ", pad) + s.Caret.Render(strings.Repeat("^", width)) + "\n")
	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, count int) string {
	header := s.FilePath.Render(path)
	if count > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", count, plural(count, "finding", "findings")))
	}
	return header
}

// quoteDetected makes whitespace visible in the detected text.
func quoteDetected(text string) string {
	return fmt.Sprintf("%q", text)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

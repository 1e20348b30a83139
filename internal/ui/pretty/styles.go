// Package pretty renders findings, diffs and summaries for the terminal.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ANSI 256 palette indexes.
const (
	colorRed    = "9"
	colorGreen  = "10"
	colorYellow = "11"
	colorPink   = "13"
	colorCyan   = "14"
	colorGray   = "8"
	colorSilver = "7"
)

// Styles holds one lipgloss style per element of jandent's output.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style

	FilePath   lipgloss.Style
	Location   lipgloss.Style
	Kind       lipgloss.Style
	RuleID     lipgloss.Style
	Detected   lipgloss.Style
	Message    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles builds the style set. With color disabled every style renders
// its input unchanged.
func NewStyles(colorEnabled bool) *Styles {
	fg := func(color string) lipgloss.Style {
		if !colorEnabled {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	bold := func(style lipgloss.Style) lipgloss.Style {
		if !colorEnabled {
			return style
		}
		return style.Bold(true)
	}

	return &Styles{
		Error:   bold(fg(colorRed)),
		Warning: bold(fg(colorYellow)),
		Success: bold(fg(colorGreen)),

		FilePath:   bold(lipgloss.NewStyle()),
		Location:   fg(colorGray),
		Kind:       fg(colorYellow),
		RuleID:     fg(colorGray),
		Detected:   bold(fg(colorPink)),
		Message:    lipgloss.NewStyle(),
		SourceLine: fg(colorSilver),
		Caret:      fg(colorRed),

		DiffHeader:  bold(lipgloss.NewStyle()),
		DiffHunk:    fg(colorCyan),
		DiffAdd:     fg(colorGreen),
		DiffRemove:  fg(colorRed),
		DiffContext: fg(colorGray),

		TableHeader:    bold(fg(colorSilver)),
		TableSeparator: fg(colorGray),

		Dim:  fg(colorGray),
		Bold: bold(lipgloss.NewStyle()),
	}
}

// IsColorEnabled resolves a --color mode for writer. "always" and "never"
// are absolute; anything else means color only on a terminal without NO_COLOR.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

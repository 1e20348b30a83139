package cli

import (
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/jandent/internal/ui/pretty"
)

// maxHelpWidth caps wrapped help text on wide terminals.
const maxHelpWidth = 100

// HelpStyles colors the parts of command help.
type HelpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	Description lipgloss.Style
	Example     lipgloss.Style
	Alias       lipgloss.Style
	Dim         lipgloss.Style
}

// NewHelpStyles returns help styles; without color they are all plain.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	style := func(color string, bold bool) lipgloss.Style {
		s := lipgloss.NewStyle()
		if !colorEnabled {
			return s
		}
		if color != "" {
			s = s.Foreground(lipgloss.Color(color))
		}
		return s.Bold(bold)
	}
	return &HelpStyles{
		Command:     style("14", true),
		Heading:     style("11", true),
		Subcommand:  style("10", false),
		Flag:        style("12", false),
		Description: style("", false),
		Example:     style("8", false),
		Alias:       style("8", false),
		Dim:         style("8", false),
	}
}

const usageTemplate = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ command .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ command .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ heading "Aliases:" }}
  {{ alias (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ example .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ description .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{ command .CommandPath }}{{if .Version}} {{ dim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | wrap | trimTrailingWhitespaces }}

{{end}}` + usageTemplate

// HelpFormatter renders cobra help with HelpStyles, wrapping long text to
// the terminal.
type HelpFormatter struct {
	styles *HelpStyles

	// width wraps long descriptions; 0 leaves them as written.
	width int

	usage *template.Template
	help  *template.Template
}

// NewHelpFormatter builds a formatter for writer under the given --color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	h := &HelpFormatter{
		styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer)),
		width:  min(terminalWidth(writer), maxHelpWidth),
	}
	funcs := template.FuncMap{
		"command":                 h.styles.Command.Render,
		"heading":                 h.styles.Heading.Render,
		"subcommand":              h.styles.Subcommand.Render,
		"description":             h.styles.Description.Render,
		"example":                 h.styles.Example.Render,
		"alias":                   h.styles.Alias.Render,
		"dim":                     h.styles.Dim.Render,
		"flags":                   h.flagUsages,
		"wrap":                    h.wrap,
		"join":                    strings.Join,
		"rpad":                    rpad,
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
	h.usage = template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	h.help = template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate))
	return h
}

// ApplyToCommand installs the styled usage and help on cmd; subcommands
// inherit them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return h.usage.Execute(c.OutOrStdout(), c)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := h.help.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
}

// terminalWidth returns the column count of writer, or 0 when it is not a terminal.
func terminalWidth(writer io.Writer) int {
	f, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// wrap reflows text to the formatter width. Japanese text has no spaces to
// break on, so lipgloss breaks it by display width.
func (h *HelpFormatter) wrap(text string) string {
	if h.width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(h.width).Render(text)
}

// flagUsages styles the pflag usage block line by line.
func (h *HelpFormatter) flagUsages(set interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(set.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}
	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.flagLine(line)
	}
	return strings.Join(lines, "\n")
}

// flagLine styles "  -w, --write   description": flags in Flag, the value
// type dimmed, the description plain.
func (h *HelpFormatter) flagLine(line string) string {
	body := strings.TrimLeft(line, " ")
	parts := splitFlagLine(body)
	if len(parts) != 2 {
		return line
	}

	tokens := strings.Fields(parts[0])
	for i, token := range tokens {
		name, comma := strings.CutSuffix(token, ",")
		if !strings.HasPrefix(name, "-") {
			tokens[i] = h.styles.Dim.Render(token)
			continue
		}
		tokens[i] = h.styles.Flag.Render(name)
		if comma {
			tokens[i] += ","
		}
	}

	indent := line[:len(line)-len(body)]
	return indent + strings.Join(tokens, " ") + "   " + h.styles.Description.Render(parts[1])
}

// splitFlagLine splits a flag line at the first run of two or more spaces
// into [flags, description]. A line without such a run comes back whole.
func splitFlagLine(line string) []string {
	gap := strings.Index(line, "  ")
	if gap < 0 {
		return []string{line}
	}
	desc := strings.TrimLeft(line[gap:], " ")
	if desc == "" {
		return []string{strings.TrimRight(line, " ")}
	}
	return []string{line[:gap], desc}
}

// rpad pads str to padding display columns.
func rpad(str string, padding int) string {
	return runewidth.FillRight(str, padding)
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/jandent/internal/ui/pretty"
	"github.com/yaklabco/jandent/pkg/analysis"
)

// Table layout for summary output. Widths are terminal cells, so Japanese
// file names pad correctly.
const (
	tableWidth  = 90
	keyColWidth = 70
	numColWidth = 8
)

// padRight pads s to width cells, truncating with an ellipsis when longer.
// Must be called before applying ANSI styles.
func padRight(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// padLeft must be called before applying ANSI styles.
func padLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// SummaryRenderer formats results as aggregated summary tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if !report.Totals.HasIssues() {
		fmt.Fprintln(r.out, r.styles.Success.Render("No issues found"))
		return nil
	}

	r.renderTable("Kinds", "Kind", len(report.ByKind), func(i int) (string, int) {
		return string(report.ByKind[i].Kind), report.ByKind[i].Findings
	})
	fmt.Fprintln(r.out)
	r.renderTable("Rules", "Rule", len(report.ByRule), func(i int) (string, int) {
		rule := report.ByRule[i]
		return r.opts.RuleFormat.Label(rule.RuleID, rule.RuleName), rule.Findings
	})
	fmt.Fprintln(r.out)
	r.renderTable("Files", "File", len(report.ByFile), func(i int) (string, int) {
		return report.ByFile[i].Path, report.ByFile[i].Findings
	})
	fmt.Fprintln(r.out)
	r.renderTotals(report.Totals)

	return nil
}

func (r *SummaryRenderer) renderTable(title, keyHeader string, rows int, row func(int) (string, int)) {
	if rows == 0 {
		return
	}

	separator := r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth))

	fmt.Fprintln(r.out, r.styles.Bold.Render(title))
	fmt.Fprintln(r.out, separator)
	fmt.Fprintf(r.out, "%s %s\n",
		r.styles.TableHeader.Render(padRight(keyHeader, keyColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
	)
	fmt.Fprintln(r.out, separator)

	for i := range rows {
		key, count := row(i)
		fmt.Fprintf(r.out, "%s %s\n", padRight(key, keyColWidth), padLeft(strconv.Itoa(count), numColWidth))
	}
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals) {
	findingWord := "findings"
	if totals.Findings == 1 {
		findingWord = "finding"
	}
	fileWord := "files"
	if totals.FilesWithIssues == 1 {
		fileWord = "file"
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+
		r.styles.Warning.Render(fmt.Sprintf("%d %s", totals.Findings, findingWord))+
		fmt.Sprintf(" in %d %s", totals.FilesWithIssues, fileWord))
}

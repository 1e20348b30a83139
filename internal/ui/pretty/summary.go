package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/jandent/pkg/runner"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "4 findings in 2 files, 1 file converted, 1 skipped".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	var parts []string

	if stats.FindingsTotal == 0 {
		parts = append(parts, s.Success.Render("No issues found")+
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, plural(stats.FilesProcessed, "file", "files"))))
	} else {
		parts = append(parts, fmt.Sprintf("%s in %d %s",
			s.Warning.Render(fmt.Sprintf("%d %s", stats.FindingsTotal, plural(stats.FindingsTotal, "finding", "findings"))),
			stats.FilesWithIssues,
			plural(stats.FilesWithIssues, "file", "files"),
		))
	}

	if stats.FilesWritten > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s converted",
			stats.FilesWritten, plural(stats.FilesWritten, "file", "files"))))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s", stats.FilesErrored, plural(stats.FilesErrored, "error", "errors"))))
	}

	return strings.Join(parts, ", ") + "\n"
}

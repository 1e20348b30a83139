package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/jandent/pkg/analysis"
	"github.com/yaklabco/jandent/pkg/lint"
	"github.com/yaklabco/jandent/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path       string         `json:"path"`
	Findings   []lint.Finding `json:"findings"`
	Modified   bool           `json:"modified,omitempty"`
	Written    bool           `json:"written,omitempty"`
	Skipped    bool           `json:"skipped,omitempty"`
	SkipReason string         `json:"skipReason,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int               `json:"filesChecked"`
	FilesWithIssues int               `json:"filesWithIssues"`
	FilesModified   int               `json:"filesModified"`
	FilesErrored    int               `json:"filesErrored"`
	TotalFindings   int               `json:"totalFindings"`
	ByKind          map[lint.Kind]int `json:"byKind"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalFindings, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: analysis.ReportVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{ByKind: make(map[lint.Kind]int)},
	}
	if result == nil {
		return output
	}

	for _, file := range result.Files {
		entry := JSONFileResult{
			Path:     displayPath(file.Path, r.opts.WorkingDir),
			Findings: make([]lint.Finding, 0),
		}

		if file.Error != nil {
			entry.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if res := file.Result; res != nil {
			entry.Modified = res.Modified
			entry.Written = res.Written
			entry.Skipped = res.Skipped
			entry.SkipReason = res.SkipReason
			entry.Findings = append(entry.Findings, res.Findings...)
			for _, f := range res.Findings {
				output.Summary.ByKind[f.Kind]++
			}
		}

		output.Summary.TotalFindings += len(entry.Findings)
		if len(entry.Findings) > 0 {
			output.Summary.FilesWithIssues++
		}
		if entry.Modified {
			output.Summary.FilesModified++
		}

		output.Files = append(output.Files, entry)
		output.Summary.FilesChecked++
	}

	return output
}

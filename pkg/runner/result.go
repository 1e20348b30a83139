package runner

import "github.com/yaklabco/jandent/pkg/lint"

// FileOutcome is the pipeline result for one discovered file.
type FileOutcome struct {
	Path string

	// Result is nil when Error is set.
	Result *lint.PipelineResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesSkipped    int
	FilesErrored    int

	// FilesWithIssues counts files with at least one finding.
	FilesWithIssues int

	// FilesModified counts files whose converted text differs from the input.
	FilesModified int

	// FilesWritten counts files rewritten on disk.
	FilesWritten int

	FindingsTotal  int
	FindingsByKind map[lint.Kind]int
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per discovered file, in discovery order.
	Files []FileOutcome

	Stats Stats
}

// HasFindings reports whether any file produced findings.
func (r *Result) HasFindings() bool {
	return r != nil && r.Stats.FindingsTotal > 0
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

func newStats() Stats {
	return Stats{
		FindingsByKind: make(map[lint.Kind]int),
	}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	res := outcome.Result
	r.Stats.FilesProcessed++
	if res.Skipped {
		r.Stats.FilesSkipped++
	}
	if res.Modified {
		r.Stats.FilesModified++
	}
	if res.Written {
		r.Stats.FilesWritten++
	}

	if len(res.Findings) > 0 {
		r.Stats.FilesWithIssues++
		r.Stats.FindingsTotal += len(res.Findings)
		for _, f := range res.Findings {
			r.Stats.FindingsByKind[f.Kind]++
		}
	}
}

// NewResult builds a Result from outcomes produced outside Run, such as
// text read from standard input.
func NewResult(outcomes ...FileOutcome) *Result {
	result := &Result{
		Files: make([]FileOutcome, 0, len(outcomes)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(outcomes)
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result
}

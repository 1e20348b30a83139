// Package analysis turns runner results into the grouped views the
// reporters render.
package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/yaklabco/jandent/pkg/lint"
	"github.com/yaklabco/jandent/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// Analyze builds a Report from a runner result.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}
	if result == nil {
		return report
	}

	var entries []FindingEntry
	for _, file := range result.Files {
		report.Totals.Files++

		if file.Error != nil {
			report.Totals.FilesErrored++
			continue
		}
		if file.Result == nil {
			continue
		}
		if file.Result.Skipped {
			report.Totals.FilesSkipped++
		}
		if file.Result.Modified {
			report.Totals.FilesModified++
		}
		if len(file.Result.Findings) > 0 {
			report.Totals.FilesWithIssues++
		}

		display := relativePath(file.Path, opts.WorkingDir)
		for _, f := range file.Result.Findings {
			entries = append(entries, FindingEntry{
				FilePath:    display,
				Line:        f.Line,
				ColumnBegin: f.ColumnBegin,
				ColumnEnd:   f.ColumnEnd,
				Detected:    f.Detected,
				Kind:        f.Kind,
				RuleID:      f.RuleID,
				RuleName:    f.RuleName,
				Message:     f.Message(),
			})
		}
	}
	report.Totals.Findings = len(entries)

	if opts.IncludeFindings {
		report.Findings = entries
	}
	if opts.IncludeByFile {
		report.ByFile = byFile(entries, opts)
	}
	if opts.IncludeByRule {
		report.ByRule = byRule(entries, opts)
	}
	if opts.IncludeByKind {
		report.ByKind = byKind(entries, opts)
	}

	return report
}

func relativePath(path, workDir string) string {
	if workDir == "" {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		return path
	}
	return rel
}

func byFile(entries []FindingEntry, opts Options) []FileAnalysis {
	groups := lo.GroupBy(entries, func(e FindingEntry) string { return e.FilePath })

	out := lo.MapToSlice(groups, func(path string, group []FindingEntry) FileAnalysis {
		rules := lo.Uniq(lo.Map(group, func(e FindingEntry, _ int) string { return e.RuleID }))
		slices.Sort(rules)
		return FileAnalysis{Path: path, Findings: len(group), Rules: rules}
	})

	sortViews(out, opts, func(a FileAnalysis) (string, int) { return a.Path, a.Findings })
	return out
}

func byRule(entries []FindingEntry, opts Options) []RuleAnalysis {
	groups := lo.GroupBy(entries, func(e FindingEntry) string { return e.RuleID })

	out := lo.MapToSlice(groups, func(id string, group []FindingEntry) RuleAnalysis {
		files := lo.Uniq(lo.Map(group, func(e FindingEntry, _ int) string { return e.FilePath }))
		slices.Sort(files)
		return RuleAnalysis{
			RuleID:   id,
			RuleName: group[0].RuleName,
			Kind:     group[0].Kind,
			Findings: len(group),
			Files:    files,
		}
	})

	sortViews(out, opts, func(a RuleAnalysis) (string, int) { return a.RuleID, a.Findings })
	return out
}

func byKind(entries []FindingEntry, opts Options) []KindAnalysis {
	counts := lo.CountValuesBy(entries, func(e FindingEntry) lint.Kind { return e.Kind })

	out := lo.MapToSlice(counts, func(kind lint.Kind, n int) KindAnalysis {
		return KindAnalysis{Kind: kind, Message: kind.Message(), Findings: n}
	})

	sortViews(out, opts, func(a KindAnalysis) (string, int) { return string(a.Kind), a.Findings })
	return out
}

// sortViews orders grouped rows. Count order falls back to the key so
// output is stable across runs.
func sortViews[T any](rows []T, opts Options, key func(T) (string, int)) {
	slices.SortFunc(rows, func(left, right T) int {
		lk, lc := key(left)
		rk, rc := key(right)
		if opts.SortBy == SortByAlpha {
			return cmp.Compare(lk, rk)
		}
		result := cmp.Compare(lc, rc)
		if opts.SortDesc {
			result = -result
		}
		if result == 0 {
			result = cmp.Compare(lk, rk)
		}
		return result
	})
}

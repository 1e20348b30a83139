package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/fix"
	"github.com/yaklabco/jandent/pkg/lint"
	"github.com/yaklabco/jandent/pkg/reporter"
	"github.com/yaklabco/jandent/pkg/runner"
)

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "/work/章一.txt",
				Result: &lint.PipelineResult{
					Original: "えっ！。本当？\n",
					Findings: []lint.Finding{
						{Line: 1, ColumnBegin: 0, ColumnEnd: 1, Detected: "え", Kind: lint.KindMissingLineHeadSpace, RuleID: "JD001", RuleName: "line-head-indent"},
						{Line: 1, ColumnBegin: 3, ColumnEnd: 4, Detected: "。", Kind: lint.KindSpecificCharAfterOtherSpecificChars, RuleID: "JD006", RuleName: "no-punctuation-after-exclamation"},
					},
				},
			},
			{Path: "/work/clean.txt", Result: &lint.PipelineResult{Original: "　はい。\n", Findings: []lint.Finding{}}},
			{Path: "/work/missing.txt", Error: errors.New("file not found")},
		},
		Stats: runner.Stats{FilesProcessed: 2, FilesErrored: 1, FilesWithIssues: 1, FindingsTotal: 2},
	}
}

func report(t *testing.T, opts reporter.Options, result *runner.Result) (string, int) {
	t.Helper()

	var buf bytes.Buffer
	opts.Writer = &buf
	opts.Color = "never"
	opts.WorkingDir = "/work"

	rep, err := reporter.New(opts)
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	return buf.String(), count
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{input: "", want: reporter.FormatText},
		{input: "text", want: reporter.FormatText},
		{input: "json", want: reporter.FormatJSON},
		{input: "summary", want: reporter.FormatSummary},
		{input: "diff", want: reporter.FormatDiff},
		{input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, reporter.ErrUnknownFormat)
				assert.False(t, reporter.Format(tt.input).IsValid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "xml"})
	require.Error(t, err)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	opts.RuleFormat = config.RuleFormatID
	out, count := report(t, opts, sampleResult())

	assert.Equal(t, 2, count)
	assert.Contains(t, out, "章一.txt (2 findings)")
	assert.Contains(t, out, "1:1")
	assert.Contains(t, out, "1:4")
	assert.Contains(t, out, "(JD006)")
	assert.Contains(t, out, "        えっ！。本当？\n")
	assert.Contains(t, out, "\n              ^^\n", "caret sits under the full-width 。")
	assert.Contains(t, out, "missing.txt: error: file not found")
	assert.NotContains(t, out, "clean.txt")
	assert.Contains(t, out, "2 findings in 1 file")
}

func TestTextReporter_NoFiles(t *testing.T) {
	t.Parallel()

	out, count := report(t, reporter.DefaultOptions(), &runner.Result{})
	assert.Zero(t, count)
	assert.Equal(t, "No files to check.\n", out)
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	out, count := report(t, reporter.Options{Format: reporter.FormatJSON}, sampleResult())
	assert.Equal(t, 2, count)

	var decoded reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	require.Len(t, decoded.Files, 3)
	assert.Equal(t, "章一.txt", decoded.Files[0].Path)
	require.Len(t, decoded.Files[0].Findings, 2)
	assert.Equal(t, "。", decoded.Files[0].Findings[1].Detected)
	assert.Equal(t, 3, decoded.Files[0].Findings[1].ColumnBegin)
	assert.NotNil(t, decoded.Files[1].Findings)
	assert.Equal(t, "file not found", decoded.Files[2].Error)

	assert.Equal(t, reporter.JSONSummary{
		FilesChecked:    3,
		FilesWithIssues: 1,
		FilesErrored:    1,
		TotalFindings:   2,
		ByKind: map[lint.Kind]int{
			lint.KindMissingLineHeadSpace:                1,
			lint.KindSpecificCharAfterOtherSpecificChars: 1,
		},
	}, decoded.Summary)

	// Non-ASCII stays readable.
	assert.Contains(t, out, `"detected": "え"`)
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	out, _ := report(t, reporter.Options{Format: reporter.FormatJSON, Compact: true}, nil)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, `"files":[]`)
}

func TestSummaryReporter(t *testing.T) {
	t.Parallel()

	out, count := report(t, reporter.Options{Format: reporter.FormatSummary, RuleFormat: config.RuleFormatCombined}, sampleResult())
	assert.Equal(t, 2, count)

	assert.Contains(t, out, "Kinds")
	assert.Contains(t, out, "Rules")
	assert.Contains(t, out, "Files")
	assert.Contains(t, out, "JD006/no-punctuation-after-exclamation")
	assert.Contains(t, out, "章一.txt")
	assert.Contains(t, out, "Total: 2 findings in 1 file")
}

func TestSummaryReporter_Clean(t *testing.T) {
	t.Parallel()

	out, count := report(t, reporter.Options{Format: reporter.FormatSummary}, &runner.Result{})
	assert.Zero(t, count)
	assert.Equal(t, "No issues found\n", out)
}

func TestDiffReporter(t *testing.T) {
	t.Parallel()

	diff := fix.GenerateDiff("/work/章一.txt", []string{"えっ！。本当？"}, []string{"　えっ！　本当？"})
	require.NotNil(t, diff)

	result := &runner.Result{Files: []runner.FileOutcome{
		{Path: "/work/章一.txt", Result: &lint.PipelineResult{Modified: true, Diff: diff}},
		{Path: "/work/same.txt", Result: &lint.PipelineResult{}},
	}}

	opts := reporter.DefaultOptions()
	opts.Format = reporter.FormatDiff
	out, count := report(t, opts, result)

	assert.Equal(t, 1, count)
	assert.Contains(t, out, "diff --git a/章一.txt b/章一.txt\n")
	assert.Contains(t, out, "@@ -1,1 +1,1 @@\n")
	assert.Contains(t, out, "-えっ！。本当？\n")
	assert.Contains(t, out, "+　えっ！　本当？\n")
	assert.Contains(t, out, "1 file changed, 1(+), 1(-)")
	assert.NotContains(t, out, "same.txt")
}

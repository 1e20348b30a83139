package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/lint"
	_ "github.com/yaklabco/jandent/pkg/lint/rules"
	"github.com/yaklabco/jandent/pkg/runner"
)

func TestRunLint(t *testing.T) {
	t.Parallel()

	root := tree(t, map[string]string{
		"a.txt": "あ\nい\n",
		"b.txt": "　きれいな文。\n",
		"c.txt": "えっ！。\n",
	})

	result, err := runner.New(nil).Run(context.Background(), runner.Options{
		WorkingDir: root,
		Jobs:       2,
		Mode:       lint.ModeLint,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, rels(t, root, pathsOf(result)))
	assert.Equal(t, 3, result.Stats.FilesDiscovered)
	assert.Equal(t, 3, result.Stats.FilesProcessed)
	assert.Equal(t, 2, result.Stats.FilesWithIssues)
	assert.Equal(t, 4, result.Stats.FindingsTotal)
	assert.Equal(t, 3, result.Stats.FindingsByKind[lint.KindMissingLineHeadSpace])
	assert.Equal(t, 1, result.Stats.FindingsByKind[lint.KindSpecificCharAfterOtherSpecificChars])
	assert.True(t, result.HasFindings())
	assert.False(t, result.HasErrors())
}

func TestRunConvertWrite(t *testing.T) {
	t.Parallel()

	root := tree(t, map[string]string{
		"a.txt": "あ\n",
		"b.txt": "　済み。\n",
	})

	cfg := config.NewConfig()
	cfg.Write = true

	result, err := runner.New(nil).Run(context.Background(), runner.Options{
		WorkingDir: root,
		Mode:       lint.ModeConvert,
		Config:     cfg,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.FilesModified)
	assert.Equal(t, 1, result.Stats.FilesWritten)
	assert.Zero(t, result.Stats.FindingsTotal)

	got, err := os.ReadFile(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "　あ\n", string(got))
	assert.FileExists(t, filepath.Join(root, "a.txt.jandent.bak"))
	assert.NoFileExists(t, filepath.Join(root, "b.txt.jandent.bak"))
}

func TestRunRecordsFileErrors(t *testing.T) {
	t.Parallel()

	root := tree(t, map[string]string{"a.txt": "あ\n", "b.txt": "い\n"})

	cfg := config.NewConfig()
	cfg.Encoding = "latin1"

	result, err := runner.New(nil).Run(context.Background(), runner.Options{
		WorkingDir: root,
		Mode:       lint.ModeLint,
		Config:     cfg,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Stats.FilesErrored)
	assert.True(t, result.HasErrors())
	for _, outcome := range result.Files {
		assert.ErrorIs(t, outcome.Error, lint.ErrDecodeFailure)
	}
}

func TestRunNoFiles(t *testing.T) {
	t.Parallel()

	result, err := runner.New(nil).Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasFindings())
}

func pathsOf(result *runner.Result) []string {
	paths := make([]string, 0, len(result.Files))
	for _, f := range result.Files {
		paths = append(paths, f.Path)
	}
	return paths
}

func TestNewResult(t *testing.T) {
	t.Parallel()

	result := runner.NewResult(
		runner.FileOutcome{Path: "<stdin>", Result: &lint.PipelineResult{
			Findings: []lint.Finding{{Kind: lint.KindMissingLineHeadSpace}},
			Modified: true,
		}},
		runner.FileOutcome{Path: "broken.txt", Error: lint.ErrFileNotFound},
	)

	assert.Len(t, result.Files, 2)
	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesModified)
	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.True(t, result.HasFindings())
	assert.True(t, result.HasErrors())
}

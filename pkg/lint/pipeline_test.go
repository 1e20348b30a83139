package lint_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/fsutil"
	"github.com/yaklabco/jandent/pkg/lint"
)

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "novel.txt")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestPipelineProcessFileWrite(t *testing.T) {
	t.Parallel()

	path := writeFile(t, []byte("えっ！。本当？\n"))
	pipeline := lint.NewPipeline(lint.NewEngine(nil, nil))

	opts := lint.PipelineOptions{
		Convert:  true,
		Write:    true,
		Encoding: config.EncodingUTF8,
		Backup:   fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar},
	}

	result, err := pipeline.ProcessFile(context.Background(), path, opts)
	require.NoError(t, err)
	assert.True(t, result.Modified)
	assert.True(t, result.Written)
	assert.True(t, result.BackupCreated)
	assert.Equal(t, "converted (backup created)", result.Summary())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "　えっ！　本当？\n", string(got))

	backup, err := os.ReadFile(path + fsutil.BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, "えっ！。本当？\n", string(backup))
}

func TestPipelineProcessFileShiftJIS(t *testing.T) {
	t.Parallel()

	raw, err := fsutil.Encode("はい。。\n", config.EncodingShiftJIS)
	require.NoError(t, err)
	path := writeFile(t, raw)

	pipeline := lint.NewPipeline(lint.NewEngine(nil, nil))
	result, err := pipeline.ProcessFile(context.Background(), path, lint.PipelineOptions{
		Convert:  true,
		Write:    true,
		Encoding: config.EncodingShiftJIS,
	})
	require.NoError(t, err)
	assert.True(t, result.Written)
	assert.False(t, result.BackupCreated)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	text, err := fsutil.Decode(got, config.EncodingShiftJIS)
	require.NoError(t, err)
	assert.Equal(t, "　はい。\n", text)
}

func TestPipelineProcessFileDryRun(t *testing.T) {
	t.Parallel()

	path := writeFile(t, []byte("あ\n「い」\n"))
	pipeline := lint.NewPipeline(lint.NewEngine(nil, nil))

	result, err := pipeline.ProcessFile(context.Background(), path, lint.PipelineOptions{
		Convert: true,
		Write:   true,
		DryRun:  true,
	})
	require.NoError(t, err)
	assert.True(t, result.Modified)
	assert.False(t, result.Written)
	require.NotNil(t, result.Diff)
	assert.Equal(t, 1, result.Diff.Additions)
	assert.Equal(t, 1, result.Diff.Deletions)
	assert.Equal(t, "changes pending", result.Summary())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "あ\n「い」\n", string(got))
}

func TestPipelineProcessFileLint(t *testing.T) {
	t.Parallel()

	path := writeFile(t, []byte("あ\n"))
	pipeline := lint.NewPipeline(lint.NewEngine(nil, nil))

	result, err := pipeline.ProcessFile(context.Background(), path, lint.PipelineOptions{Lint: true})
	require.NoError(t, err)
	assert.False(t, result.Modified)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "issues found", result.Summary())
}

func TestPipelineProcessFileErrors(t *testing.T) {
	t.Parallel()

	pipeline := lint.NewPipeline(lint.NewEngine(nil, nil))

	_, err := pipeline.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), lint.PipelineOptions{Lint: true})
	require.ErrorIs(t, err, lint.ErrFileNotFound)
	assert.True(t, lint.IsPipelineError(err))

	path := writeFile(t, []byte{0x82})
	_, err = pipeline.ProcessFile(context.Background(), path, lint.PipelineOptions{Lint: true, Encoding: "latin1"})
	require.ErrorIs(t, err, lint.ErrDecodeFailure)
}

func TestPipelineProcessContentCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lint.NewPipeline(lint.NewEngine(nil, nil)).ProcessContent(ctx, "-", "あ", lint.PipelineOptions{Convert: true})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPipelineOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Write = true
	cfg.NoBackups = true
	cfg.Encoding = config.EncodingEUCJP

	opts := lint.PipelineOptionsFromConfig(cfg, lint.ModeConvert)
	assert.True(t, opts.Convert)
	assert.False(t, opts.Lint)
	assert.True(t, opts.Write)
	assert.False(t, opts.Backup.Enabled)
	assert.Equal(t, config.EncodingEUCJP, opts.Encoding)

	opts = lint.PipelineOptionsFromConfig(nil, lint.ModeLint)
	assert.True(t, opts.Lint)
	assert.Equal(t, config.EncodingUTF8, opts.Encoding)
}

func TestPipelineProcessFileSkipsBinary(t *testing.T) {
	t.Parallel()

	path := writeFile(t, []byte{0x00, 0x01, 0x02, 'a'})
	pipeline := lint.NewPipeline(lint.NewEngine(nil, nil))

	result, err := pipeline.ProcessFile(context.Background(), path, lint.PipelineOptions{Lint: true, SkipNonText: true})
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, "skipped: binary file", result.Summary())
	assert.Empty(t, result.Findings)
}

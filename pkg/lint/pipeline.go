package lint

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/fix"
	"github.com/yaklabco/jandent/pkg/fsutil"
	"github.com/yaklabco/jandent/pkg/textdetect"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrDecodeFailure indicates the file is not valid in the configured encoding.
	ErrDecodeFailure = errors.New("decode failure")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineResult is the outcome of running one file through the pipeline.
type PipelineResult struct {
	// Path is the file path that was processed.
	Path string

	// OriginalInfo is the file state before processing. Nil for in-memory content.
	OriginalInfo *fsutil.FileInfo

	// Original is the decoded input text.
	Original string

	// Converted is the convert pass output. Empty when Convert was off.
	Converted string

	// Findings holds the lint pass output. Nil when Lint was off.
	Findings []Finding

	// Modified is true if Converted differs from Original.
	Modified bool

	// Diff is the unified diff between Original and Converted, set when
	// converting with DryRun.
	Diff *fix.Diff

	// Skipped is true if the file was not written.
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created for this file.
	BackupCreated bool

	// Written is true if the file was written to disk.
	Written bool
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	switch {
	case pr.Skipped:
		return "skipped: " + pr.SkipReason
	case pr.Written && pr.BackupCreated:
		return "converted (backup created)"
	case pr.Written:
		return "converted"
	case pr.Modified:
		return "changes pending"
	case len(pr.Findings) > 0:
		return "issues found"
	default:
		return "ok"
	}
}

// PipelineOptions controls which passes run and what happens to the result.
type PipelineOptions struct {
	// Convert runs the convert pass.
	Convert bool

	// Lint runs the lint pass.
	Lint bool

	// Write rewrites modified files in place.
	Write bool

	// DryRun produces a diff instead of writing.
	DryRun bool

	// Encoding names the encoding files are read and written in.
	Encoding string

	// Backup configures backup behavior.
	Backup fsutil.BackupConfig

	// SkipNonText skips binary, vendored, and generated files.
	SkipNonText bool

	// StrictRaceDetection re-hashes the file before writing.
	// When false, only mod time and size are checked.
	StrictRaceDetection bool
}

// Pipeline runs the engine over files.
type Pipeline struct {
	Engine *Engine
}

// NewPipeline creates a pipeline around engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile runs the full pipeline for a single file:
//  1. Read and hash the file, skip it unless it is text, then decode it.
//  2. Run the requested passes.
//  3. Generate a diff (dry-run) or stop when nothing is to be written.
//  4. Check for concurrent modifications.
//  5. Create a backup if enabled.
//  6. Encode and write atomically.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, opts PipelineOptions) (*PipelineResult, error) {
	raw, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	if opts.SkipNonText {
		if reason := textdetect.CheckContent(path, raw); reason != textdetect.ReasonNone {
			return &PipelineResult{
				Path:         path,
				OriginalInfo: info,
				Skipped:      true,
				SkipReason:   string(reason) + " file",
			}, nil
		}
	}

	text, err := fsutil.Decode(raw, opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeFailure, path, err)
	}

	result, err := p.ProcessContent(ctx, path, text, opts)
	if err != nil {
		return nil, err
	}
	result.OriginalInfo = info

	if !result.Modified || !opts.Write || opts.DryRun {
		return result, nil
	}

	modified, err := fsutil.CheckModified(ctx, info, opts.StrictRaceDetection)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	out, err := fsutil.Encode(result.Converted, opts.Encoding)
	if err != nil {
		result.Skipped = true
		result.SkipReason = err.Error()
		return result, nil
	}

	created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
	if err != nil {
		return nil, fmt.Errorf("create backup: %w", err)
	}
	result.BackupCreated = created

	if err := fsutil.WriteAtomic(ctx, path, out, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

// ProcessContent runs the requested passes over already decoded text
// without touching the file system.
func (p *Pipeline) ProcessContent(ctx context.Context, path, text string, opts PipelineOptions) (*PipelineResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("processing cancelled: %w", err)
	}

	result := &PipelineResult{
		Path:     path,
		Original: text,
	}

	if opts.Convert {
		converted, err := p.Engine.Convert(text)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", path, err)
		}
		result.Converted = converted
		result.Modified = converted != text
	}

	if opts.Lint {
		findings, err := p.Engine.Lint(text)
		if err != nil {
			return nil, fmt.Errorf("lint %s: %w", path, err)
		}
		result.Findings = findings
	}

	if result.Modified && opts.DryRun {
		result.Diff = fix.GenerateDiff(path, SplitLines(text), SplitLines(result.Converted))
	}

	return result, nil
}

func categorizeError(err error) error {
	switch {
	case errors.Is(err, fsutil.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrDecodeFailure) ||
		errors.Is(err, ErrWriteFailure)
}

// BackupConfigFromConfig creates an fsutil.BackupConfig from config.Config.
func BackupConfigFromConfig(cfg *config.Config) fsutil.BackupConfig {
	if cfg == nil {
		return fsutil.BackupConfig{Mode: fsutil.BackupModeSidecar}
	}
	return fsutil.BackupConfig{
		Enabled: cfg.Backups.Enabled && !cfg.NoBackups,
		Mode:    fsutil.BackupMode(cfg.Backups.Mode),
	}
}

// PipelineOptionsFromConfig creates PipelineOptions for a convert or lint run.
func PipelineOptionsFromConfig(cfg *config.Config, mode Mode) PipelineOptions {
	opts := PipelineOptions{
		Convert:             mode == ModeConvert,
		Lint:                mode == ModeLint,
		Encoding:            config.EncodingUTF8,
		Backup:              BackupConfigFromConfig(cfg),
		SkipNonText:         true,
		StrictRaceDetection: true,
	}
	if cfg != nil {
		opts.Write = cfg.Write
		opts.DryRun = cfg.DryRun
		if cfg.Encoding != "" {
			opts.Encoding = cfg.Encoding
		}
	}
	return opts
}

package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/jandent/internal/logging"
	"github.com/yaklabco/jandent/pkg/lint"
)

// Runner processes many files, one engine per file.
type Runner struct {
	// Registry supplies the rules. Nil means lint.DefaultRegistry.
	Registry *lint.Registry
}

// New creates a Runner over registry.
func New(registry *lint.Registry) *Runner {
	return &Runner{Registry: registry}
}

// Run discovers files under opts.Paths and processes them concurrently.
// Per-file failures are recorded on the outcome and never stop other files.
// Outcomes come back in discovery order whatever order workers finish in.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	ctx = logging.With(ctx, logging.FieldMode, opts.Mode.String())
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered files", logging.FieldFiles, len(files))

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	pipelineOpts := lint.PipelineOptionsFromConfig(opts.Config, opts.Mode)
	outcomes := make([]FileOutcome, len(files))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, path := range files {
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			// Engines are never shared between goroutines.
			pipeline := lint.NewPipeline(lint.NewEngine(opts.Config, r.Registry))

			outcome := FileOutcome{Path: path}
			pr, err := pipeline.ProcessFile(gctx, path, pipelineOpts)
			if err != nil {
				logger.Debug("file failed", logging.FieldPath, path, logging.FieldError, err)
				outcome.Error = err
			} else {
				outcome.Result = pr
				if pr.Skipped {
					logger.Debug("file skipped", logging.FieldPath, path, logging.FieldReason, pr.SkipReason)
				}
			}
			outcomes[i] = outcome
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFindingsTotal, result.Stats.FindingsTotal,
	)

	return result, nil
}

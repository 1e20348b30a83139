package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jandent/internal/logging"
	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/lint"
	"github.com/yaklabco/jandent/pkg/reporter"
	"github.com/yaklabco/jandent/pkg/runner"
)

type lintFlags struct {
	ruleFlags
	format     string
	ruleFormat string
	noContext  bool
	compact    bool
}

func newLintCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Report what convert would change",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags)
		},
	}

	addRuleFlags(cmd, &flags.ruleFlags)
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")

	return cmd
}

const lintLongDescription = `Report every place the rules would change the text.

By default, lints all .txt and .md files in the current directory and
subdirectories. Use "-" to lint standard input. Numeral conversion and the
replace table only run in convert and are never reported. The exit status is
1 when anything is reported.

Examples:
  jandent lint                        # Lint the current directory
  jandent lint manuscript/            # Lint a directory
  jandent lint - < draft.txt          # Lint standard input
  jandent lint --format json          # Machine-readable output for CI
  jandent lint --format summary       # Counts by kind, rule and file
  jandent lint --rule-format combined # Show JD005/no-consecutive-punctuation`

func runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	cliCfg, err := flags.cliConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		format, err := reporter.ParseFormat(flags.format)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		cliCfg.Format = config.OutputFormat(format)
	}
	if cmd.Flags().Changed("rule-format") {
		cliCfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}

	cfg, workDir, err := loadConfig(ctx, cmd, cliCfg)
	if err != nil {
		return err
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if format == reporter.FormatDiff {
		return fmt.Errorf("%w: diff output is only available from convert --dry-run", ErrUsage)
	}

	var result *runner.Result
	if len(args) == 1 && args[0] == "-" {
		result, err = lintStdin(ctx, cmd, cfg)
	} else {
		logger.Debug("starting lint run", logging.FieldPaths, args, logging.FieldWorkingDir, workDir)
		result, err = runner.New(nil).Run(ctx, runner.Options{
			Paths:        args,
			WorkingDir:   workDir,
			Extensions:   cfg.Extensions,
			ExcludeGlobs: cfg.Ignore,
			Jobs:         cfg.Jobs,
			Mode:         lint.ModeLint,
			Config:       cfg,
		})
	}
	if err != nil {
		return fmt.Errorf("lint run failed: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode(cmd),
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Compact:     flags.compact,
		RuleFormat:  cfg.RuleFormat,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	count, err := rep.Report(ctx, result)
	if err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	logger.Debug("lint complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldFindingsTotal, count,
	)

	if result.HasErrors() {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, result.Stats.FilesErrored, result.Stats.FilesDiscovered)
	}
	if count > 0 {
		return ErrFindingsPresent
	}
	return nil
}

func lintStdin(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (*runner.Result, error) {
	text, err := readStdin(ctx, cmd, cfg.Encoding)
	if err != nil {
		return nil, err
	}

	pipeline := lint.NewPipeline(lint.NewEngine(cfg, nil))
	pr, err := pipeline.ProcessContent(ctx, stdinName, text, lint.PipelineOptionsFromConfig(cfg, lint.ModeLint))
	if err != nil {
		return nil, err
	}
	return runner.NewResult(runner.FileOutcome{Path: stdinName, Result: pr}), nil
}

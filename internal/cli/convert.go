package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/jandent/internal/configloader"
	"github.com/yaklabco/jandent/internal/logging"
	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/fsutil"
	"github.com/yaklabco/jandent/pkg/lint"
	"github.com/yaklabco/jandent/pkg/reporter"
	"github.com/yaklabco/jandent/pkg/runner"
)

// stdinName labels standard input in diffs and reports.
const stdinName = "<stdin>"

type convertFlags struct {
	ruleFlags
	write         bool
	dryRun        bool
	numeralMode   string
	numeralGlyphs string
	newline       string
}

func newConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Normalize Japanese prose",
		Long:  convertLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, flags)
		},
	}

	addRuleFlags(cmd, &flags.ruleFlags)
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "show changes as unified diffs without writing")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "do not keep a .bak copy when writing")
	cmd.Flags().StringVar(&flags.numeralMode, "numeral-mode", "",
		"numeral style: simple, moderate, verbose, dictate")
	cmd.Flags().StringVar(&flags.numeralGlyphs, "numeral-glyphs", "", "numeral glyphs: modern, retro")
	cmd.Flags().StringVar(&flags.newline, "newline", "", "output newline: lf, crlf, cr")

	return cmd
}

const convertLongDescription = `Normalize Japanese prose.

With no path, or with "-", text is read from standard input and the
converted text is written to standard output. A single file is converted to
standard output as well. Directories and several files need --write to
rewrite them in place or --dry-run to preview the changes.

Examples:
  jandent convert < draft.txt              # Convert standard input
  jandent convert chapter1.txt             # Print the converted file
  jandent convert --write manuscript/      # Rewrite every .txt and .md file
  jandent convert --dry-run manuscript/    # Show what would change
  jandent convert --disable JD001 a.txt    # Convert without indenting
  jandent convert --numeral-mode verbose   # 12345 becomes 一万二千三百四十五`

func runConvert(cmd *cobra.Command, args []string, flags *convertFlags) error {
	ctx := commandContext(cmd)

	if flags.write && flags.dryRun {
		return fmt.Errorf("%w: --write and --dry-run cannot be combined", ErrUsage)
	}

	cliCfg, err := flags.cliConfig()
	if err != nil {
		return err
	}
	cliCfg.Write = flags.write
	cliCfg.DryRun = flags.dryRun
	cliCfg.Numeral = config.NumeralConfig{Mode: flags.numeralMode, Glyphs: flags.numeralGlyphs}
	if flags.newline != "" {
		newline, err := configloader.ParseNewline(flags.newline)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		cliCfg.Chars.Newline = newline
	}

	cfg, workDir, err := loadConfig(ctx, cmd, cliCfg)
	if err != nil {
		return err
	}

	switch {
	case readsStdin(args):
		if cfg.Write {
			return fmt.Errorf("%w: --write needs file or directory paths", ErrUsage)
		}
		return convertStdin(ctx, cmd, cfg)
	case !cfg.Write && !cfg.DryRun:
		if len(args) != 1 || isDir(args[0]) {
			return fmt.Errorf("%w: converting directories or several files needs --write or --dry-run", ErrUsage)
		}
		return convertToStdout(ctx, cmd, cfg, args[0])
	default:
		return convertFiles(ctx, cmd, cfg, workDir, args)
	}
}

func convertStdin(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	text, err := readStdin(ctx, cmd, cfg.Encoding)
	if err != nil {
		return err
	}

	pipeline := lint.NewPipeline(lint.NewEngine(cfg, nil))
	result, err := pipeline.ProcessContent(ctx, stdinName, text, lint.PipelineOptionsFromConfig(cfg, lint.ModeConvert))
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	if cfg.DryRun {
		return reportDiff(ctx, cmd, runner.NewResult(runner.FileOutcome{Path: stdinName, Result: result}), "")
	}
	return writeConverted(cmd.OutOrStdout(), result.Converted, cfg.Encoding)
}

func convertToStdout(ctx context.Context, cmd *cobra.Command, cfg *config.Config, path string) error {
	pipeline := lint.NewPipeline(lint.NewEngine(cfg, nil))
	result, err := pipeline.ProcessFile(ctx, path, lint.PipelineOptionsFromConfig(cfg, lint.ModeConvert))
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	if result.Skipped {
		return fmt.Errorf("%w: %s: %s", ErrFilesFailed, path, result.SkipReason)
	}
	return writeConverted(cmd.OutOrStdout(), result.Converted, cfg.Encoding)
}

func convertFiles(ctx context.Context, cmd *cobra.Command, cfg *config.Config, workDir string, paths []string) error {
	logger := logging.FromContext(ctx)

	result, err := runner.New(nil).Run(ctx, runner.Options{
		Paths:        paths,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Mode:         lint.ModeConvert,
		Config:       cfg,
	})
	if err != nil {
		return fmt.Errorf("convert run failed: %w", err)
	}

	if cfg.DryRun {
		if err := reportDiff(ctx, cmd, result, workDir); err != nil {
			return err
		}
	} else {
		for _, file := range result.Files {
			switch {
			case file.Error != nil:
				logger.Error("convert failed", logging.FieldPath, file.Path, logging.FieldError, file.Error)
			case file.Result.Skipped && file.Result.Modified:
				logger.Warn("file not written", logging.FieldPath, file.Path, logging.FieldReason, file.Result.SkipReason)
			case file.Result.Written:
				logger.Debug("file converted", logging.FieldPath, file.Path)
			}
		}
		logger.Info("conversion complete",
			logging.FieldFilesProcessed, result.Stats.FilesProcessed,
			logging.FieldFilesWritten, result.Stats.FilesWritten,
		)
	}

	if result.HasErrors() {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, result.Stats.FilesErrored, result.Stats.FilesDiscovered)
	}
	return nil
}

func reportDiff(ctx context.Context, cmd *cobra.Command, result *runner.Result, workDir string) error {
	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      reporter.FormatDiff,
		Color:       colorMode(cmd),
		ShowSummary: true,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}
	return nil
}

// readStdin reads and decodes all of standard input.
func readStdin(ctx context.Context, cmd *cobra.Command, encoding string) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logging.FromContext(ctx).Info("reading standard input; end with Ctrl-D")
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read standard input: %w", err)
	}
	text, err := fsutil.Decode(raw, encoding)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", lint.ErrDecodeFailure, stdinName, err)
	}
	return text, nil
}

func writeConverted(w io.Writer, text, encoding string) error {
	out, err := fsutil.Encode(text, encoding)
	if err != nil {
		return fmt.Errorf("%w: %w", lint.ErrWriteFailure, err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("%w: %w", lint.ErrWriteFailure, err)
	}
	return nil
}

func readsStdin(args []string) bool {
	return len(args) == 0 || (len(args) == 1 && args[0] == "-")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

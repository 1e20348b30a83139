package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/yaklabco/jandent/internal/configloader"
	"github.com/yaklabco/jandent/internal/logging"
	"github.com/yaklabco/jandent/pkg/config"
)

// ruleFlags are shared by every command that runs the rules.
type ruleFlags struct {
	enable    []string
	disable   []string
	ignore    []string
	encoding  string
	jobs      int
	noBackups bool
}

func addRuleFlags(cmd *cobra.Command, flags *ruleFlags) {
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil,
		"options to turn on (option names, rule IDs or rule names)")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil,
		"options to turn off (option names, rule IDs or rule names)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringVar(&flags.encoding, "encoding", "", "input encoding: utf-8, shift_jis, euc-jp, iso-2022-jp")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
}

// cliConfig turns explicitly set flags into the highest-precedence layer.
// Disabling wins when an option is both enabled and disabled.
func (f *ruleFlags) cliConfig() (*config.Config, error) {
	cfg := &config.Config{
		Options:   make(map[config.OptionName]bool),
		Encoding:  f.encoding,
		Jobs:      f.jobs,
		NoBackups: f.noBackups,
	}
	if len(f.ignore) > 0 {
		cfg.Ignore = f.ignore
	}

	for _, group := range []struct {
		keys    []string
		enabled bool
	}{
		{f.enable, true},
		{f.disable, false},
	} {
		for _, key := range group.keys {
			name, ok := configloader.ResolveOptionKey(nil, key)
			if !ok {
				return nil, unknownOptionError(key)
			}
			cfg.Options[name] = group.enabled
		}
	}
	return cfg, nil
}

func unknownOptionError(key string) error {
	if suggestion := configloader.SuggestOption(key); suggestion != "" {
		return fmt.Errorf("%w: unknown option %q (did you mean %q?)", ErrUsage, key, suggestion)
	}
	known := lo.Map(config.AllOptions(), func(name config.OptionName, _ int) string { return string(name) })
	return fmt.Errorf("%w: unknown option %q; known options: %v", ErrUsage, key, known)
}

// loadConfig resolves the layered configuration with cliCfg on top.
func loadConfig(ctx context.Context, cmd *cobra.Command, cliCfg *config.Config) (*config.Config, string, error) {
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", err
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration resolved",
		logging.FieldEncoding, cfg.Encoding,
		logging.FieldWrite, cfg.Write,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, cfg.Jobs,
	)

	return cfg, workDir, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func colorMode(cmd *cobra.Command) string {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return "auto"
	}
	return mode
}

// usageArgs marks positional-argument errors as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jandent/internal/configloader"
	"github.com/yaklabco/jandent/internal/logging"
)

// migrateFlags holds the flags for the migrate command.
type migrateFlags struct {
	force  bool
	output string
}

func newMigrateCommand() *cobra.Command {
	flags := &migrateFlags{}

	cmd := &cobra.Command{
		Use:   "migrate <args.json>",
		Short: "Convert a JavaScript arguments file to a jandent configuration",
		Long: `Convert the JSON arguments object used by the JavaScript version of the
tool into a jandent configuration file.

The input has the form {"options": {...}, "chars": {...}}. Toggles such as
isConvertArabicNum become option names, "dashs" becomes dashes, and the
order of replaceStrings is kept. Comments are allowed in the input.

Examples:
  jandent migrate args.json                      Write .jandent.yml
  jandent migrate args.json --output jandent.toml  Write TOML instead`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing output file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", ".jandent.yml", "output file path (.yml, .yaml or .toml)")

	return cmd
}

func runMigrate(cmd *cobra.Command, inputPath string, flags *migrateFlags) error {
	logger := logging.NewInteractiveWithWriter(cmd.OutOrStdout())

	if !configloader.IsYAMLConfig(flags.output) && !configloader.IsTOMLConfig(flags.output) {
		return fmt.Errorf("%w: output %q must end in .yml, .yaml or .toml", ErrUsage, flags.output)
	}

	absOutput, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	if _, err := os.Stat(absOutput); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: output file %q already exists; use --force to overwrite", ErrUsage, flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	result, err := configloader.ConvertArgsJSON(inputPath)
	if err != nil {
		return fmt.Errorf("convert arguments file: %w", err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	if err := configloader.WriteConfig(result.Config, absOutput, configloader.MigrationHeader(inputPath)); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	logger.Info("migration complete", logging.FieldPath, flags.output)
	if len(result.Warnings) > 0 {
		logger.Warn("review the warnings above and check the migrated configuration")
	}

	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jandent/internal/logging"
	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/lint"
)

type rulesFlags struct {
	ruleFormat string
	json       bool
}

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Option      string `json:"option"`
	Kind        string `json:"kind,omitempty"`
	Reports     bool   `json:"reports"`
	Default     bool   `json:"default"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rules in pipeline order",
		Long: `List every rule in the order the pipeline applies it, with its ID, name,
the option that toggles it, and the kind of finding lint reports for it.
Rules that never report only change text during convert.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := lint.DefaultRegistry.Rules()

			if flags.json {
				return outputRulesJSON(cmd.OutOrStdout(), rules)
			}

			logger := logging.NewInteractiveWithWriter(cmd.OutOrStdout())
			ruleFormat := config.RuleFormat(flags.ruleFormat)

			for _, rule := range rules {
				kind := "-"
				if rule.Reports() {
					kind = string(rule.Kind())
				}
				logger.Info(ruleFormat.Label(rule.ID(), rule.Name()),
					logging.FieldOption, rule.Option(),
					logging.FieldKind, kind,
					logging.FieldDescription, rule.Description(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "combined",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().BoolVar(&flags.json, "json", false, "output rules as JSON")

	return cmd
}

// outputRulesJSON writes rules as a JSON array.
func outputRulesJSON(w io.Writer, rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		info := ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Option:      string(rule.Option()),
			Reports:     rule.Reports(),
			Default:     config.DefaultOption(rule.Option()),
		}
		if rule.Reports() {
			info.Kind = string(rule.Kind())
		}
		infos = append(infos, info)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/semlint/internal/ui/pretty"
	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
)

type rulesFlags struct {
	ruleFormat string
	format     string
	tag        string
}

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Enabled     bool     `json:"enabled"`
	Tags        []string `json:"tags"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available semantic rules",
		Long: `List all semantic rules in evaluation order with their IDs, names,
default severity and descriptions. Diagnostics are always reported in this
order within each severity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := filterRules(lint.DefaultRegistry.Rules(), flags.tag)

			switch flags.format {
			case string(config.FormatJSON):
				return outputRulesJSON(cmd.OutOrStdout(), rules)
			case string(config.FormatText):
				styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), cmd.OutOrStdout()))
				_, err := io.WriteString(cmd.OutOrStdout(),
					styles.FormatRuleTable(rules, config.RuleFormat(flags.ruleFormat)))
				return err
			default:
				return fmt.Errorf("%w: unknown format %q; valid formats: text, json", ErrInvalidUsage, flags.format)
			}
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "combined",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")
	cmd.Flags().StringVar(&flags.tag, "tag", "",
		"only list rules with this tag (e.g. structure, deprecated)")

	return cmd
}

// filterRules keeps rules carrying tag; an empty tag keeps all.
func filterRules(rules []lint.Rule, tag string) []lint.Rule {
	if tag == "" {
		return rules
	}
	return slices.DeleteFunc(slices.Clone(rules), func(r lint.Rule) bool {
		return !slices.Contains(r.Tags(), tag)
	})
}

// outputRulesJSON writes rules as a JSON array.
func outputRulesJSON(w io.Writer, rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
			Enabled:     rule.DefaultEnabled(),
			Tags:        rule.Tags(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}

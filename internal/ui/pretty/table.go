package pretty

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
)

// FormatRuleTable renders the rule catalog as a bordered table, in catalog order.
func (s *Styles) FormatRuleTable(rules []lint.Rule, ruleFormat config.RuleFormat) string {
	rows := make([][]string, 0, len(rules))
	for _, rule := range rules {
		rows = append(rows, []string{
			config.FormatRuleID(ruleFormat, rule.ID(), rule.Name()),
			string(rule.DefaultSeverity()),
			rule.Description(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.TableBorder).
		Headers("RULE", "SEVERITY", "DESCRIPTION").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			return s.TableCell
		})

	return t.String() + "\n"
}

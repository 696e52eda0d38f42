package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
	"github.com/yaklabco/semlint/pkg/markup"
)

// applyRule parses input as a normalized fragment and runs a single rule on it.
func applyRule(t *testing.T, rule lint.Rule, input string, options map[string]any) []lint.Diagnostic {
	t.Helper()

	doc, err := markup.Parse(markup.Normalize(input))
	require.NoError(t, err)

	var ruleCfg *config.RuleConfig
	if options != nil {
		ruleCfg = &config.RuleConfig{Options: options}
	}

	ctx := lint.NewRuleContext(context.Background(), doc, config.NewConfig(), ruleCfg)
	diags, err := rule.Apply(ctx)
	require.NoError(t, err)

	return diags
}

// messages extracts the messages of diags in order.
func messages(diags []lint.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Message)
	}
	return out
}

// checkAll runs the full built-in catalog over input.
func checkAll(t *testing.T, input string) lint.Report {
	t.Helper()

	session := lint.NewSession(NewRegistry(), nil)
	require.NoError(t, session.Initialize(&lint.Collector{}, &lint.Collector{}))

	report, err := session.Check(context.Background(), input)
	require.NoError(t, err)

	return report
}

package rules

import (
	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
)

// SuccessMessage is reported when a check produced no other diagnostic.
const SuccessMessage = "Semantic validation succeeded! Congratulations!"

// SemanticSuccessRule acknowledges a clean document.
// It must be registered last: it only looks at diagnostics produced before it.
type SemanticSuccessRule struct {
	lint.BaseRule
}

// NewSemanticSuccessRule creates a new success summary rule.
func NewSemanticSuccessRule() *SemanticSuccessRule {
	return &SemanticSuccessRule{
		BaseRule: lint.NewBaseRule(
			"SEM013",
			"semantic-success",
			"Acknowledges documents without any finding",
			[]string{"summary"},
			config.SeverityInfo,
		),
	}
}

// Apply fires when no earlier rule produced a diagnostic in this pass.
func (r *SemanticSuccessRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if len(ctx.Prior) > 0 {
		return nil, nil
	}
	return []lint.Diagnostic{r.Diagnostic(SuccessMessage)}, nil
}

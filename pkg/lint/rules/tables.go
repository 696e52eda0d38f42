package rules

import (
	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
)

// TablelessDesignMessage is reported when a table is found.
const TablelessDesignMessage = "Presence of <table> element(s) has been detected; " +
	"be sure to use them only for tabular data and not for layout purposes"

// TablelessDesignRule reminds authors that tables are for tabular data only.
type TablelessDesignRule struct {
	lint.BaseRule
}

// NewTablelessDesignRule creates a new tableless design rule.
func NewTablelessDesignRule() *TablelessDesignRule {
	return &TablelessDesignRule{
		BaseRule: lint.NewBaseRule(
			"SEM010",
			"tableless-design",
			"Tables should only hold tabular data, not layout",
			[]string{"layout", "tables"},
			config.SeverityInfo,
		),
	}
}

// Apply fires once if the document contains any table.
func (r *TablelessDesignRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if !ctx.Doc.HasTag("table") {
		return nil, nil
	}
	return []lint.Diagnostic{r.Diagnostic(TablelessDesignMessage)}, nil
}

package rules

import (
	"strings"

	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
)

// newInputTypes are the HTML5 input types suggested in place of type="text".
//
//nolint:gochecknoglobals // Read-only catalog data.
var newInputTypes = []string{
	"color", "date", "datetime", "datetime-local", "email", "month", "number",
	"range", "search", "tel", "time", "url", "week",
}

// NewInputTypesMessage is reported when a text input is found.
//
//nolint:gochecknoglobals // Derived from newInputTypes once.
var NewInputTypesMessage = "Consider replacing <input type='text'> element(s) with new input types (" +
	strings.Join(newInputTypes, ", ") + ") when applicable"

// NewInputTypesRule suggests specific HTML5 input types over plain text inputs.
type NewInputTypesRule struct {
	lint.BaseRule
}

// NewNewInputTypesRule creates a new input types rule.
func NewNewInputTypesRule() *NewInputTypesRule {
	return &NewInputTypesRule{
		BaseRule: lint.NewBaseRule(
			"SEM009",
			"new-input-types",
			"Text inputs may be replaceable by specific HTML5 input types",
			[]string{"forms"},
			config.SeverityInfo,
		),
	}
}

// Apply fires once if any input declares type="text".
// The type value is compared ASCII case-insensitively, as HTML does.
func (r *NewInputTypesRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	for _, input := range ctx.Doc.Elements("input") {
		if typ, ok := input.Attr("type"); ok && strings.EqualFold(typ, "text") {
			return []lint.Diagnostic{r.Diagnostic(NewInputTypesMessage)}, nil
		}
	}
	return nil, nil
}

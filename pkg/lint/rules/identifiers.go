package rules

import (
	"fmt"

	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
)

// semanticNames lists the ids and classes that have a dedicated HTML5 element.
//
//nolint:gochecknoglobals // Read-only catalog data.
var semanticNames = []string{
	"header", "footer", "menu", "section", "article", "nav", "aside", "details", "summary",
	"figure", "figcaption", "hgroup", "mark", "meter", "progress", "ruby", "time",
}

// SemanticIdentifiersRule reports generic elements that emulate a semantic
// element through their id or class (e.g. <div id="header">).
type SemanticIdentifiersRule struct {
	lint.BaseRule
}

// NewSemanticIdentifiersRule creates a new semantic identifiers rule.
func NewSemanticIdentifiersRule() *SemanticIdentifiersRule {
	return &SemanticIdentifiersRule{
		BaseRule: lint.NewBaseRule(
			"SEM008",
			"semantic-identifiers",
			"Elements identified as header, nav, etc. should use the matching HTML5 element",
			[]string{"structure", "identifiers"},
			config.SeverityError,
		),
	}
}

// RelatedTag returns the element that replaces an id or class called name.
func RelatedTag(name string) string {
	if name == "menu" {
		return "nav"
	}
	return name
}

// IDMessage is the diagnostic for an element whose id is name.
func IDMessage(name string) string {
	return fmt.Sprintf("Replace element having id %q by a <%s> element", name, RelatedTag(name))
}

// ClassMessage is the diagnostic for elements whose class is name.
func ClassMessage(name string) string {
	return fmt.Sprintf("Replace element having class %q by a <%s> element", name, RelatedTag(name))
}

// Apply checks every name in order; the id and class checks are independent
// so both may fire for the same name.
//
// The "names" option replaces the default list.
func (r *SemanticIdentifiersRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for _, name := range ctx.OptionStringSlice("names", semanticNames) {
		if ctx.Doc.HasID(name) {
			diags = append(diags, r.Diagnostic(IDMessage(name)))
		}
		if ctx.Doc.HasClass(name) {
			diags = append(diags, r.Diagnostic(ClassMessage(name)))
		}
	}

	return diags, nil
}

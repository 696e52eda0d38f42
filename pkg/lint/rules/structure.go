package rules

import (
	"fmt"

	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
)

// Essential and secondary structural tags, in catalog order.
//
//nolint:gochecknoglobals // Read-only catalog data.
var (
	essentialTags = []string{"header", "footer", "nav"}
	secondaryTags = []string{"section", "article", "aside"}
)

// TagNotionRule reports a structural element that is missing from the page.
//
// The element counts as present when the document contains the tag itself,
// an element whose id is the tag name, or an element with that class.
type TagNotionRule struct {
	lint.BaseRule
	tag     string
	message string
}

// NewEssentialTagRule creates the blocking rule for an essential tag
// (header, footer or nav).
func NewEssentialTagRule(id, tag string) *TagNotionRule {
	return &TagNotionRule{
		BaseRule: lint.NewBaseRule(
			id,
			tag+"-element",
			fmt.Sprintf("Pages should contain a <%s> element", tag),
			[]string{"structure"},
			config.SeverityError,
		),
		tag:     tag,
		message: fmt.Sprintf("It is strongly recommended that your page contains a <%s> element", tag),
	}
}

// NewSecondaryTagRule creates the advisory rule for a secondary tag
// (section, article or aside).
func NewSecondaryTagRule(id, tag string) *TagNotionRule {
	return &TagNotionRule{
		BaseRule: lint.NewBaseRule(
			id,
			tag+"-element",
			fmt.Sprintf("Pages should consider using <%s> elements", tag),
			[]string{"structure"},
			config.SeverityInfo,
		),
		tag:     tag,
		message: fmt.Sprintf("You should consider using <%s> elements", tag),
	}
}

// Tag returns the element name the rule looks for.
func (r *TagNotionRule) Tag() string {
	return r.tag
}

// Apply reports the tag when no notion of it exists in the document.
func (r *TagNotionRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Doc.HasTagNotion(r.tag) {
		return nil, nil
	}
	return []lint.Diagnostic{r.Diagnostic(r.message)}, nil
}

// EmptyParagraphMessage is reported once per empty paragraph.
const EmptyParagraphMessage = "Don't use empty <p> elements to structure your page, use CSS margins instead"

// EmptyParagraphRule reports paragraphs used as vertical spacers.
type EmptyParagraphRule struct {
	lint.BaseRule
}

// NewEmptyParagraphRule creates a new empty paragraph rule.
func NewEmptyParagraphRule() *EmptyParagraphRule {
	return &EmptyParagraphRule{
		BaseRule: lint.NewBaseRule(
			"SEM007",
			"no-empty-paragraphs",
			"Empty <p> elements should not be used for layout",
			[]string{"structure", "layout"},
			config.SeverityError,
		),
	}
}

// Apply emits one diagnostic per paragraph whose inner content is empty.
// Whitespace counts as content.
func (r *EmptyParagraphRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for _, p := range ctx.Doc.Elements("p") {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		if p.InnerHTML() == "" {
			diags = append(diags, r.Diagnostic(EmptyParagraphMessage))
		}
	}

	return diags, nil
}

package rules

import (
	"fmt"
	"slices"

	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
)

// Advice selects the message template used for a deprecated construct.
type Advice int

const (
	// AdviceDeprecated only says the construct is deprecated.
	AdviceDeprecated Advice = iota

	// AdviceReplace names a semantic replacement.
	AdviceReplace

	// AdviceStyling points to CSS instead of presentational markup.
	AdviceStyling
)

// Deprecation describes one deprecated tag or attribute and how to advise on it.
// Adding a rule for a new construct is a matter of adding an entry.
type Deprecation struct {
	// Name is the tag or attribute name.
	Name string

	// Advice selects the message template.
	Advice Advice

	// Replacement is the suggested element for AdviceReplace.
	Replacement string

	// Label overrides how an attribute is named in messages.
	Label string
}

// TagMessage renders the advice for a deprecated element.
func (d Deprecation) TagMessage() string {
	switch d.Advice {
	case AdviceReplace:
		return fmt.Sprintf("Use <%s> instead of <%s>", d.Replacement, d.Name)
	case AdviceStyling:
		return fmt.Sprintf("Don't use <%s>, use CSS styling instead", d.Name)
	default:
		return fmt.Sprintf("Don't use deprecated <%s> element", d.Name)
	}
}

// AttrMessage renders the advice for a deprecated attribute.
func (d Deprecation) AttrMessage() string {
	label := d.Label
	if label == "" {
		label = fmt.Sprintf("%q attributes", d.Name)
	}

	switch d.Advice {
	case AdviceReplace:
		return fmt.Sprintf("Use %q instead of %s", d.Replacement, label)
	case AdviceStyling:
		return fmt.Sprintf("Don't use %s, use external CSS styling instead", label)
	default:
		return fmt.Sprintf("Don't use deprecated %s", label)
	}
}

// DeprecatedTags is the ordered catalog of deprecated elements.
//
//nolint:gochecknoglobals // Read-only catalog data.
var DeprecatedTags = []Deprecation{
	{Name: "acronym"},
	{Name: "applet"},
	{Name: "b", Advice: AdviceReplace, Replacement: "strong"},
	{Name: "basefont"},
	{Name: "big"},
	{Name: "blackface"},
	{Name: "blockquote"},
	{Name: "center", Advice: AdviceStyling},
	{Name: "dir"},
	{Name: "embed"},
	{Name: "font"},
	{Name: "frame"},
	{Name: "frameset"},
	{Name: "i", Advice: AdviceReplace, Replacement: "em"},
	{Name: "iframe"},
	{Name: "isindex"},
	{Name: "layer"},
	{Name: "menu"},
	{Name: "noembed"},
	{Name: "noframes"},
	{Name: "s"},
	{Name: "shadow"},
	{Name: "strike"},
	{Name: "tt"},
	{Name: "u", Advice: AdviceStyling},
}

// DeprecatedAttributes is the ordered catalog of deprecated attributes.
//
//nolint:gochecknoglobals // Read-only catalog data.
var DeprecatedAttributes = []Deprecation{
	{Name: "style", Advice: AdviceStyling, Label: "inline styles"},
}

// DeprecatedTagsRule reports deprecated and presentational elements.
type DeprecatedTagsRule struct {
	lint.BaseRule
	catalog []Deprecation
}

// NewDeprecatedTagsRule creates a rule over the DeprecatedTags catalog.
func NewDeprecatedTagsRule() *DeprecatedTagsRule {
	return &DeprecatedTagsRule{
		BaseRule: lint.NewBaseRule(
			"SEM011",
			"no-deprecated-tags",
			"Deprecated and presentational elements should not be used",
			[]string{"deprecated"},
			config.SeverityError,
		),
		catalog: DeprecatedTags,
	}
}

// Apply emits one diagnostic per catalog entry present in the document,
// in catalog order. Tags listed in the "allowed" option are skipped.
func (r *DeprecatedTagsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	allowed := ctx.OptionStringSlice("allowed", nil)

	var diags []lint.Diagnostic
	for _, dep := range r.catalog {
		if slices.Contains(allowed, dep.Name) {
			continue
		}
		if ctx.Doc.HasTag(dep.Name) {
			diags = append(diags, r.Diagnostic(dep.TagMessage()))
		}
	}

	return diags, nil
}

// DeprecatedAttributesRule reports deprecated attributes.
type DeprecatedAttributesRule struct {
	lint.BaseRule
	catalog []Deprecation
}

// NewDeprecatedAttributesRule creates a rule over the DeprecatedAttributes catalog.
func NewDeprecatedAttributesRule() *DeprecatedAttributesRule {
	return &DeprecatedAttributesRule{
		BaseRule: lint.NewBaseRule(
			"SEM012",
			"no-deprecated-attributes",
			"Deprecated attributes such as inline styles should not be used",
			[]string{"deprecated"},
			config.SeverityError,
		),
		catalog: DeprecatedAttributes,
	}
}

// Apply emits one diagnostic per catalog entry carried by any element.
func (r *DeprecatedAttributesRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic
	for _, dep := range r.catalog {
		if ctx.Doc.HasAttr(dep.Name) {
			diags = append(diags, r.Diagnostic(dep.AttrMessage()))
		}
	}
	return diags, nil
}

package rules

import "github.com/yaklabco/semlint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
//
// Registration order is evaluation order, and therefore the order in which
// diagnostics appear within each severity.
func RegisterAll(registry *lint.Registry) {
	// Essential structure
	registry.Register(NewEssentialTagRule("SEM001", essentialTags[0])) // header
	registry.Register(NewEssentialTagRule("SEM002", essentialTags[1])) // footer
	registry.Register(NewEssentialTagRule("SEM003", essentialTags[2])) // nav

	// Secondary structure
	registry.Register(NewSecondaryTagRule("SEM004", secondaryTags[0])) // section
	registry.Register(NewSecondaryTagRule("SEM005", secondaryTags[1])) // article
	registry.Register(NewSecondaryTagRule("SEM006", secondaryTags[2])) // aside

	registry.Register(NewEmptyParagraphRule())       // SEM007
	registry.Register(NewSemanticIdentifiersRule())  // SEM008
	registry.Register(NewNewInputTypesRule())        // SEM009
	registry.Register(NewTablelessDesignRule())      // SEM010
	registry.Register(NewDeprecatedTagsRule())       // SEM011
	registry.Register(NewDeprecatedAttributesRule()) // SEM012

	// Pass summary, always last.
	registry.Register(NewSemanticSuccessRule()) // SEM013
}

// NewRegistry returns a registry holding the built-in catalog.
func NewRegistry() *lint.Registry {
	registry := lint.NewRegistry()
	RegisterAll(registry)
	return registry
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
}

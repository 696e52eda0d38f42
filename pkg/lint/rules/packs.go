package rules

import "github.com/yaklabco/semlint/pkg/config"

// Pack describes a named group of rule defaults for a particular use case.
// Packs are configuration fragments that can be used as starting points
// for .semlint.yml files, or selected with the "pack" config key.
type Pack struct {
	// Name is the short identifier for the pack (e.g., "strict").
	Name string

	// Description explains the purpose and characteristics of the pack.
	Description string

	// Rules contains rule configurations keyed by rule ID.
	Rules map[string]config.RuleConfig
}

// DefaultPack returns the catalog defaults written out explicitly.
func DefaultPack() Pack {
	return Pack{
		Name:        "default",
		Description: "Catalog defaults: structure and deprecations as errors, suggestions as infos",
		Rules:       map[string]config.RuleConfig{},
	}
}

// StrictPack elevates every suggestion to an error.
func StrictPack() Pack {
	return Pack{
		Name:        "strict",
		Description: "Strict pack: every finding is blocking",
		Rules: map[string]config.RuleConfig{
			"SEM004": enabled("error"), // section-element
			"SEM005": enabled("error"), // article-element
			"SEM006": enabled("error"), // aside-element
			"SEM009": enabled("error"), // new-input-types
			"SEM010": enabled("error"), // tableless-design
		},
	}
}

// StructurePack keeps only the page structure rules, for partial templates
// where deprecations are checked elsewhere.
func StructurePack() Pack {
	return Pack{
		Name:        "structure",
		Description: "Structure pack: document outline rules only",
		Rules: map[string]config.RuleConfig{
			"SEM009": disabled(), // new-input-types
			"SEM010": disabled(), // tableless-design
			"SEM011": disabled(), // no-deprecated-tags
			"SEM012": disabled(), // no-deprecated-attributes
		},
	}
}

// FragmentPack is meant for snippets and components that are not whole
// pages, where a missing header, footer or nav is expected.
func FragmentPack() Pack {
	return Pack{
		Name:        "fragment",
		Description: "Fragment pack: no page-level structure requirements",
		Rules: map[string]config.RuleConfig{
			"SEM001": disabled(), // header-element
			"SEM002": disabled(), // footer-element
			"SEM003": disabled(), // nav-element
			"SEM004": disabled(), // section-element
			"SEM005": disabled(), // article-element
			"SEM006": disabled(), // aside-element
		},
	}
}

// Packs returns all built-in rule packs.
func Packs() []Pack {
	return []Pack{
		DefaultPack(),
		StrictPack(),
		StructurePack(),
		FragmentPack(),
	}
}

// PackByName returns a pack by name, or nil if not found.
func PackByName(name string) *Pack {
	for _, p := range Packs() {
		if p.Name == name {
			return &p
		}
	}
	return nil
}

// PackNames returns the names of all available packs.
func PackNames() []string {
	packs := Packs()
	names := make([]string, len(packs))
	for i, p := range packs {
		names[i] = p.Name
	}
	return names
}

// enabled creates a RuleConfig with the rule enabled and the given severity.
func enabled(sev string) config.RuleConfig {
	enabled := true
	return config.RuleConfig{
		Enabled:  &enabled,
		Severity: &sev,
	}
}

// disabled creates a RuleConfig that turns the rule off.
func disabled() config.RuleConfig {
	enabled := false
	return config.RuleConfig{
		Enabled: &enabled,
	}
}

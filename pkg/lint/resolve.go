package lint

import (
	"slices"

	"github.com/yaklabco/semlint/pkg/config"
)

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity is the resolved severity for diagnostics from this rule.
	Severity config.Severity

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules, in catalog order, with their resolved configuration.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule resolves the configuration for a single rule.
func resolveRule(rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
		Config:   nil,
	}

	if cfg == nil {
		return rr
	}

	matches := func(key string) bool {
		return key == rule.ID() || key == rule.Name()
	}

	// Apply rule-specific config, keyed by ID or name. ID wins when both exist.
	ruleCfg, ok := cfg.Rules[rule.ID()]
	if !ok {
		ruleCfg, ok = cfg.Rules[rule.Name()]
	}
	if ok {
		rr.Config = &ruleCfg

		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			if sev := config.Severity(*ruleCfg.Severity); sev.IsValid() {
				rr.Severity = sev
			}
		}
	}

	// Explicit enable/disable from CLI takes precedence over config files.
	if slices.ContainsFunc(cfg.EnableRules, matches) {
		rr.Enabled = true
	}
	if slices.ContainsFunc(cfg.DisableRules, matches) {
		rr.Enabled = false
	}

	return rr
}

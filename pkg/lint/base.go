package lint

import "github.com/yaklabco/semlint/pkg/config"

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	id       string          // Unique identifier (e.g., "SEM001")
	name     string          // Human-readable name
	desc     string          // Detailed description
	tags     []string        // Categorization tags
	severity config.Severity // Default severity
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags []string, severity config.Severity) BaseRule {
	return BaseRule{
		id:       id,
		name:     name,
		desc:     desc,
		tags:     tags,
		severity: severity,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the default severity for this rule.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return r.severity
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Diagnostic creates a diagnostic attributed to this rule.
// The session replaces the severity with the resolved one.
func (r *BaseRule) Diagnostic(message string) Diagnostic {
	return Diagnostic{
		RuleID:   r.id,
		RuleName: r.name,
		Severity: r.severity,
		Message:  message,
	}
}

// Apply must be overridden by concrete rule implementations.
// The default implementation returns no diagnostics.
func (r *BaseRule) Apply(_ *RuleContext) ([]Diagnostic, error) {
	return nil, nil
}

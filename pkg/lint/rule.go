// Package lint provides the rule engine, diagnostics, registry and check
// session for semlint.
package lint

import "github.com/yaklabco/semlint/pkg/config"

// Severity aliases used by the check session to split diagnostics into the
// blocking and advisory collections.
const (
	// Blocking findings are ones the author is strongly urged to fix.
	Blocking = config.SeverityError

	// Advisory findings are non-blocking suggestions.
	Advisory = config.SeverityInfo
)

// Diagnostic is a single semantic finding. Diagnostics are values: once
// produced by a rule they are never mutated.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "header-element").
	RuleName string

	// Severity decides which collection the diagnostic joins.
	Severity config.Severity

	// Message is the human-readable recommendation.
	Message string
}

// IsBlocking reports whether the diagnostic belongs to the blocking collection.
func (d Diagnostic) IsBlocking() bool {
	return d.Severity == Blocking
}

// Rule defines the interface that all semantic rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "SEM001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["structure"]).
	Tags() []string

	// Apply evaluates the rule against the given context and returns diagnostics.
	//
	// Rules must:
	//   - Return one diagnostic per finding, in document order.
	//   - Be stateless; the same rule value is shared by every session.
	//   - Return error only for internal failures, not findings.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}

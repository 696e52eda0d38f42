package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
	"github.com/yaklabco/semlint/pkg/lint/rules"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.SEM001.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rules).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) addError(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) addWarning(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a configuration for errors and warnings.
// Rule keys are checked against registry; nil means lint.DefaultRegistry.
func Validate(cfg *config.Config, registry *lint.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}
	if registry == nil {
		registry = lint.DefaultRegistry
	}

	if cfg.Flavor != "" && !IsValidFlavor(cfg.Flavor) {
		result.addError("flavor", cfg.Flavor, "invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor)
	}

	if cfg.Pack != "" && rules.PackByName(cfg.Pack) == nil {
		result.addError("pack", cfg.Pack, "unknown pack %q; must be one of: %s",
			cfg.Pack, strings.Join(rules.PackNames(), ", "))
	}

	if cfg.Format != "" && !IsValidFormat(cfg.Format) {
		result.addError("format", cfg.Format, "invalid format %q; must be one of: text, json", cfg.Format)
	}

	switch cfg.RuleFormat {
	case "", config.RuleFormatName, config.RuleFormatID, config.RuleFormatCombined:
	default:
		result.addError("rule_format", cfg.RuleFormat,
			"invalid rule format %q; must be one of: name, id, combined", cfg.RuleFormat)
	}

	if cfg.Jobs < 0 {
		result.addError("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if cfg.Server.MaxBodyBytes < 0 {
		result.addError("server.max_body_bytes", cfg.Server.MaxBodyBytes, "max_body_bytes must be >= 0")
	}

	validateRules(cfg, registry, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateRules checks rule configurations and CLI rule lists.
func validateRules(cfg *config.Config, registry *lint.Registry, result *ValidationResult) {
	for key, ruleCfg := range cfg.Rules {
		if _, exists := registry.Get(key); !exists {
			result.addWarning("rules."+key, key, "unknown rule %q; it will be ignored", key)
		}

		if ruleCfg.Severity != nil && !IsValidSeverity(*ruleCfg.Severity) {
			result.addError("rules."+key+".severity", *ruleCfg.Severity,
				"invalid severity %q; must be one of: error, info", *ruleCfg.Severity)
		}
	}

	for _, key := range cfg.EnableRules {
		if _, exists := registry.Get(key); !exists {
			result.addWarning("enable", key, "unknown rule %q; it will be ignored", key)
		}
	}
	for _, key := range cfg.DisableRules {
		if _, exists := registry.Get(key); !exists {
			result.addWarning("disable", key, "unknown rule %q; it will be ignored", key)
		}
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// filepath.Match returns an error only for malformed patterns.
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.addError(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}
}

// IsValidSeverity returns true if the severity string is valid.
func IsValidSeverity(s string) bool {
	return config.Severity(s).IsValid()
}

// IsValidFlavor returns true if the flavor is valid.
func IsValidFlavor(f config.Flavor) bool {
	return f == config.FlavorCommonMark || f == config.FlavorGFM
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return f == config.FormatText || f == config.FormatJSON
}

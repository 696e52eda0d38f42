package configloader

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/semlint/pkg/config"
)

// envVarPrefix is the prefix for all semlint environment variables.
const envVarPrefix = "SEMLINT_"

// envSetter applies the raw value of one environment variable.
type envSetter func(cfg *config.Config, value, envVar string) error

// envVar describes one supported environment variable.
type envVar struct {
	suffix      string
	description string
	apply       envSetter
}

// envVars lists the supported environment variables in documentation order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = []envVar{
	{"FLAVOR", "Markdown flavor for .md input: commonmark or gfm", func(cfg *config.Config, v, _ string) error {
		cfg.Flavor = config.Flavor(v)
		return nil
	}},
	{"PACK", "Built-in rule pack: default, strict, structure or fragment", func(cfg *config.Config, v, _ string) error {
		cfg.Pack = v
		return nil
	}},
	{"FORMAT", "Output format: text or json", func(cfg *config.Config, v, _ string) error {
		cfg.Format = config.OutputFormat(v)
		return nil
	}},
	{"RULE_FORMAT", "Rule identifiers in output: name, id or combined", func(cfg *config.Config, v, _ string) error {
		cfg.RuleFormat = config.RuleFormat(v)
		return nil
	}},
	{"JOBS", "Number of parallel workers (0 = auto)", func(cfg *config.Config, v, name string) error {
		jobs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", name, v)
		}
		cfg.Jobs = jobs
		return nil
	}},
	{"IGNORE", "Comma-separated list of ignore patterns", func(cfg *config.Config, v, _ string) error {
		cfg.Ignore = parseSliceValue(v)
		return nil
	}},
	{"ENABLE", "Comma-separated rule IDs or names to enable", func(cfg *config.Config, v, _ string) error {
		cfg.EnableRules = parseSliceValue(v)
		return nil
	}},
	{"DISABLE", "Comma-separated rule IDs or names to disable", func(cfg *config.Config, v, _ string) error {
		cfg.DisableRules = parseSliceValue(v)
		return nil
	}},
	{"SERVER_ADDR", "Listen address for semlint serve", func(cfg *config.Config, v, _ string) error {
		cfg.Server.Addr = v
		return nil
	}},
	{"SERVER_MAX_BODY_BYTES", "Maximum request body size for semlint serve", func(cfg *config.Config, v, name string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", name, v)
		}
		cfg.Server.MaxBodyBytes = n
		return nil
	}},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with SEMLINT_ (e.g., SEMLINT_PACK).
// Unset and empty variables are ignored.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, ev := range envVars {
		name := envVarPrefix + ev.suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if err := ev.apply(cfg, value, name); err != nil {
			return err
		}
	}

	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	result := make(map[string]string, len(envVars))
	for _, ev := range envVars {
		result[envVarPrefix+ev.suffix] = ev.description
	}
	return result
}

// EnvVarNames returns the supported environment variable names, sorted.
func EnvVarNames() []string {
	names := make([]string, 0, len(envVars))
	for _, ev := range envVars {
		names = append(names, envVarPrefix+ev.suffix)
	}
	slices.Sort(names)
	return names
}

// Package config defines core configuration types for semlint.
// These types are pure data structures with no dependency on any config loader.
package config

// Severity represents the severity level of a semantic diagnostic.
//
// Only two levels exist: errors are blocking findings the author is strongly
// urged to fix, infos are advisory suggestions.
type Severity string

const (
	SeverityError Severity = "error"
	SeverityInfo  Severity = "info"
)

// IsValid returns true if the severity is a known level.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityInfo:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `mapstructure:"enabled" yaml:"enabled,omitempty"`
	Severity *string        `mapstructure:"severity" yaml:"severity,omitempty"`
	Options  map[string]any `mapstructure:"options" yaml:"options,omitempty"`
}

// ServerConfig controls the HTTP API started by "semlint serve".
type ServerConfig struct {
	// Addr is the listen address (e.g. ":8080").
	Addr string `mapstructure:"addr" yaml:"addr"`

	// MaxBodyBytes caps the size of a submitted document.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" yaml:"max_body_bytes"`
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "header-element"
	RuleFormatID       RuleFormat = "id"       // "SEM001"
	RuleFormatCombined RuleFormat = "combined" // "SEM001/header-element"
)

// Flavor specifies the Markdown flavor used to render Markdown input to HTML.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Config is the root configuration structure for semlint.
type Config struct {
	// Flavor is the Markdown flavor for .md input ("commonmark" or "gfm").
	Flavor Flavor `mapstructure:"flavor" yaml:"flavor"`

	// Pack names a built-in rule pack applied beneath Rules (e.g. "strict").
	Pack string `mapstructure:"pack" yaml:"pack,omitempty"`

	// Rules contains per-rule configuration keyed by rule ID or name.
	Rules map[string]RuleConfig `mapstructure:"rules" yaml:"rules"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// Server configures the HTTP API.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"-" yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `mapstructure:"-" yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `mapstructure:"-" yaml:"-"`
}

// DefaultMaxBodyBytes is the default request size limit for the HTTP API (4 MiB).
const DefaultMaxBodyBytes = 4 << 20

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Flavor: FlavorCommonMark,
		Rules:  make(map[string]RuleConfig),
		Ignore: nil,
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
		Format:     FormatText,
		RuleFormat: RuleFormatName,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
}

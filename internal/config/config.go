// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty"`
}

// Config represents the tc CLI configuration.
// Loaded from ~/.tc/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// Catalog is the default catalog file for commands that take an
	// optional path argument.
	// Env: TC_CATALOG, Default: "tc.yml"
	Catalog string `json:"catalog,omitempty"`

	// Format is the default output format for render commands.
	// Env: TC_FORMAT, Default: "yaml"
	Format string `json:"format,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Catalog: "tc.yml",
		Format:  "yaml",
	}
}

// DefaultConfigTemplate is the starter file written by "tc config init".
// Every setting ships commented out, so the file documents the available
// settings without changing any behavior.
const DefaultConfigTemplate = `# tc configuration.
#
# Values here sit below environment variables and flags in precedence:
#   flag > environment > this file > built-in default

# Default catalog file for commands that take an optional path argument.
# Env: TC_CATALOG
#catalog: tc.yml

# Default output format: yaml, json, or table.
# Env: TC_FORMAT
#format: yaml

#log:
#  timestamps: true
`

// WithDefaults returns a copy of the config with empty fields replaced by
// their defaults.
func (c *Config) WithDefaults() *Config {
	defaults := DefaultConfig()
	out := *c

	if out.Catalog == "" {
		out.Catalog = defaults.Catalog
	}
	if out.Format == "" {
		out.Format = defaults.Format
	}

	return &out
}

// Merge overwrites fields in c with non-empty values from other.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Catalog != "" {
		c.Catalog = other.Catalog
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	if other.Log.Timestamps != nil {
		c.Log.Timestamps = other.Log.Timestamps
	}
}

// IsEmpty reports whether no configuration value is set.
func (c *Config) IsEmpty() bool {
	return c.Catalog == "" && c.Format == "" && c.Log.Timestamps == nil
}

package config

import (
	"os"

	"github.com/pegasus-wms/tc/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from a command-line flag or argument.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue describes a configuration value after precedence resolution.
type ResolvedValue struct {
	// Key names the configuration value.
	Key string
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// resolveValue applies the standard precedence chain:
// flag > env > config > default. Lower-precedence values that were set are
// recorded in Shadowed.
func resolveValue(key, flagValue, envVar, configValue, defaultValue string) ResolvedValue {
	result := ResolvedValue{
		Key:      key,
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := ""
	if envVar != "" {
		envValue = os.Getenv(envVar)
	}

	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case configValue != "":
		result.Value = configValue
		result.Source = SourceConfig
	default:
		result.Value = defaultValue
		result.Source = SourceDefault
	}

	if defaultValue != "" && result.Source != SourceDefault {
		result.Shadowed[SourceDefault] = defaultValue
	}

	return result
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) TC_CONFIG env, (3) ~/.tc/config.yaml default.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	return resolveValue("config", opts.FlagValue, "TC_CONFIG", "", paths.ConfigFile), nil
}

// ResolveCatalogPathOptions contains options for catalog path resolution.
type ResolveCatalogPathOptions struct {
	// ArgValue is the positional path argument (empty if not given).
	ArgValue string
	// ConfigValue is the catalog value from the config file (empty if not set).
	ConfigValue string
}

// ResolveCatalogPath resolves the catalog file path using precedence:
// (1) positional argument, (2) TC_CATALOG env, (3) config.catalog,
// (4) "tc.yml" default.
func ResolveCatalogPath(opts ResolveCatalogPathOptions) ResolvedValue {
	return resolveValue("catalog", opts.ArgValue, "TC_CATALOG", opts.ConfigValue, DefaultConfig().Catalog)
}

// ResolveFormatOptions contains options for output format resolution.
type ResolveFormatOptions struct {
	// FlagValue is the --output flag value (empty if not set).
	FlagValue string
	// ConfigValue is the format value from the config file (empty if not set).
	ConfigValue string
	// Default replaces the built-in default when non-empty. Commands with a
	// different natural format (show renders a table) set it.
	Default string
}

// ResolveFormat resolves the output format using precedence:
// (1) --output flag, (2) TC_FORMAT env, (3) config.format, (4) "yaml" default.
func ResolveFormat(opts ResolveFormatOptions) ResolvedValue {
	defaultValue := DefaultConfig().Format
	if opts.Default != "" {
		defaultValue = opts.Default
	}
	return resolveValue("format", opts.FlagValue, "TC_FORMAT", opts.ConfigValue, defaultValue)
}

// ResolveAllOptions contains the flag values needed to resolve every
// configuration value.
type ResolveAllOptions struct {
	// ConfigFlag is the --config flag value.
	ConfigFlag string
	// OutputFlag is the --output flag value.
	OutputFlag string
	// Config is the loaded configuration (may be nil).
	Config *Config
}

// ResolvedConfig holds every configuration value after precedence resolution.
type ResolvedConfig struct {
	// ConfigPath is the resolved config file path.
	ConfigPath ResolvedValue
	// Catalog is the resolved default catalog path. A positional path
	// argument, when given, takes precedence over this value.
	Catalog ResolvedValue
	// Format is the resolved output format.
	Format ResolvedValue
}

// ResolveAll resolves every configuration value in one pass.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	configPath, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: opts.ConfigFlag})
	if err != nil {
		return nil, err
	}

	var catalogValue, formatValue string
	if opts.Config != nil {
		catalogValue = opts.Config.Catalog
		formatValue = opts.Config.Format
	}

	return &ResolvedConfig{
		ConfigPath: configPath,
		Catalog:    ResolveCatalogPath(ResolveCatalogPathOptions{ConfigValue: catalogValue}),
		Format:     ResolveFormat(ResolveFormatOptions{FlagValue: opts.OutputFlag, ConfigValue: formatValue}),
	}, nil
}

// Values returns every resolved value for logging and display.
func (rc *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{rc.ConfigPath, rc.Catalog, rc.Format}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCatalogPath_ArgPrecedence(t *testing.T) {
	t.Setenv("TC_CATALOG", "env/tc.yml")

	result := ResolveCatalogPath(ResolveCatalogPathOptions{
		ArgValue:    "arg/tc.yml",
		ConfigValue: "config/tc.yml",
	})

	assert.Equal(t, "arg/tc.yml", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "env/tc.yml", result.Shadowed[SourceEnv])
	assert.Equal(t, "config/tc.yml", result.Shadowed[SourceConfig])
	assert.Equal(t, "tc.yml", result.Shadowed[SourceDefault])
}

func TestResolveCatalogPath_EnvPrecedence(t *testing.T) {
	t.Setenv("TC_CATALOG", "env/tc.yml")

	result := ResolveCatalogPath(ResolveCatalogPathOptions{
		ArgValue:    "", // No positional argument
		ConfigValue: "config/tc.yml",
	})

	assert.Equal(t, "env/tc.yml", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
	assert.Equal(t, "config/tc.yml", result.Shadowed[SourceConfig])
	assert.NotContains(t, result.Shadowed, SourceFlag)
}

func TestResolveCatalogPath_ConfigFallback(t *testing.T) {
	t.Setenv("TC_CATALOG", "")

	result := ResolveCatalogPath(ResolveCatalogPathOptions{
		ArgValue:    "",
		ConfigValue: "config/tc.yml",
	})

	assert.Equal(t, "config/tc.yml", result.Value)
	assert.Equal(t, SourceConfig, result.Source)
	assert.Equal(t, "tc.yml", result.Shadowed[SourceDefault])
	assert.NotContains(t, result.Shadowed, SourceEnv)
}

func TestResolveCatalogPath_Default(t *testing.T) {
	t.Setenv("TC_CATALOG", "")

	result := ResolveCatalogPath(ResolveCatalogPathOptions{})

	assert.Equal(t, "tc.yml", result.Value)
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolveFormat_FlagPrecedence(t *testing.T) {
	t.Setenv("TC_FORMAT", "json")

	result := ResolveFormat(ResolveFormatOptions{
		FlagValue:   "table",
		ConfigValue: "yaml",
	})

	assert.Equal(t, "table", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "json", result.Shadowed[SourceEnv])
	assert.Equal(t, "yaml", result.Shadowed[SourceConfig])
}

func TestResolveFormat_Default(t *testing.T) {
	t.Setenv("TC_FORMAT", "")

	result := ResolveFormat(ResolveFormatOptions{})

	assert.Equal(t, "yaml", result.Value)
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolveFormat_DefaultOverride(t *testing.T) {
	t.Setenv("TC_FORMAT", "")

	result := ResolveFormat(ResolveFormatOptions{Default: "table"})

	assert.Equal(t, "table", result.Value)
	assert.Equal(t, SourceDefault, result.Source)
}

func TestResolveFormat_DefaultOverrideLosesToConfig(t *testing.T) {
	t.Setenv("TC_FORMAT", "")

	result := ResolveFormat(ResolveFormatOptions{
		ConfigValue: "json",
		Default:     "table",
	})

	assert.Equal(t, "json", result.Value)
	assert.Equal(t, SourceConfig, result.Source)
	assert.Equal(t, "table", result.Shadowed[SourceDefault])
}

func TestResolveConfigPath_FlagPrecedence(t *testing.T) {
	t.Setenv("TC_CONFIG", "/env/path/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{
		FlagValue: "/flag/path/config.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "/flag/path/config.yaml", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/path/config.yaml", result.Shadowed[SourceEnv])
	assert.NotEmpty(t, result.Shadowed[SourceDefault])
}

func TestResolveConfigPath_EnvPrecedence(t *testing.T) {
	t.Setenv("TC_CONFIG", "/env/path/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{
		FlagValue: "", // No flag
	})
	require.NoError(t, err)

	assert.Equal(t, "/env/path/config.yaml", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
	assert.NotEmpty(t, result.Shadowed[SourceDefault])
}

func TestResolveConfigPath_Default(t *testing.T) {
	t.Setenv("TC_CONFIG", "")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{})
	require.NoError(t, err)

	assert.Contains(t, result.Value, ".tc")
	assert.Contains(t, result.Value, "config.yaml")
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestConfigSource_String(t *testing.T) {
	assert.Equal(t, "flag", string(SourceFlag))
	assert.Equal(t, "env", string(SourceEnv))
	assert.Equal(t, "config", string(SourceConfig))
	assert.Equal(t, "default", string(SourceDefault))
}

func TestResolveAll_Defaults(t *testing.T) {
	t.Setenv("TC_CONFIG", "")
	t.Setenv("TC_CATALOG", "")
	t.Setenv("TC_FORMAT", "")

	resolved, err := ResolveAll(ResolveAllOptions{})
	require.NoError(t, err)

	assert.Equal(t, SourceDefault, resolved.ConfigPath.Source)
	assert.Equal(t, "tc.yml", resolved.Catalog.Value)
	assert.Equal(t, SourceDefault, resolved.Catalog.Source)
	assert.Equal(t, "yaml", resolved.Format.Value)
	assert.Equal(t, SourceDefault, resolved.Format.Source)
}

func TestResolveAll_ConfigValues(t *testing.T) {
	t.Setenv("TC_CATALOG", "")
	t.Setenv("TC_FORMAT", "")

	resolved, err := ResolveAll(ResolveAllOptions{
		Config: &Config{
			Catalog: "shared/tc.yml",
			Format:  "json",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "shared/tc.yml", resolved.Catalog.Value)
	assert.Equal(t, SourceConfig, resolved.Catalog.Source)
	assert.Equal(t, "json", resolved.Format.Value)
	assert.Equal(t, SourceConfig, resolved.Format.Source)
}

func TestResolveAll_FlagOverridesConfig(t *testing.T) {
	t.Setenv("TC_FORMAT", "")

	resolved, err := ResolveAll(ResolveAllOptions{
		OutputFlag: "table",
		Config:     &Config{Format: "json"},
	})
	require.NoError(t, err)

	assert.Equal(t, "table", resolved.Format.Value)
	assert.Equal(t, SourceFlag, resolved.Format.Source)
	assert.Equal(t, "json", resolved.Format.Shadowed[SourceConfig])
}

func TestResolveAll_NilConfig(t *testing.T) {
	t.Setenv("TC_CATALOG", "")
	t.Setenv("TC_FORMAT", "")

	resolved, err := ResolveAll(ResolveAllOptions{Config: nil})
	require.NoError(t, err)

	assert.Equal(t, "tc.yml", resolved.Catalog.Value)
	assert.Equal(t, "yaml", resolved.Format.Value)
}

func TestResolvedConfig_Values(t *testing.T) {
	t.Setenv("TC_CONFIG", "")
	t.Setenv("TC_CATALOG", "")
	t.Setenv("TC_FORMAT", "")

	resolved, err := ResolveAll(ResolveAllOptions{})
	require.NoError(t, err)

	values := resolved.Values()
	require.Len(t, values, 3)
	assert.Equal(t, "config", values[0].Key)
	assert.Equal(t, "catalog", values[1].Key)
	assert.Equal(t, "format", values[2].Key)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidator(t *testing.T) {
	validator, err := NewValidator()
	require.NoError(t, err)
	assert.NotNil(t, validator)
}

func TestValidatorValidate(t *testing.T) {
	validator, err := NewValidator()
	require.NoError(t, err)

	t.Run("default config is valid", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.NoError(t, validator.Validate(cfg))
	})

	t.Run("empty config is valid", func(t *testing.T) {
		assert.NoError(t, validator.Validate(&Config{}))
	})

	t.Run("full config is valid", func(t *testing.T) {
		noTimestamps := false
		cfg := &Config{
			Catalog: "catalogs/production.yml",
			Format:  "json",
			Log:     LogConfig{Timestamps: &noTimestamps},
		}
		assert.NoError(t, validator.Validate(cfg))
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		err := validator.Validate(&Config{Format: "xml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "format")
	})

	t.Run("whitespace-only catalog is rejected", func(t *testing.T) {
		err := validator.Validate(&Config{Catalog: "   "})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog")
		assert.Contains(t, err.Error(), "whitespace")
	})
}

func TestValidatorValidateFile(t *testing.T) {
	validator, err := NewValidator()
	require.NoError(t, err)

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "catalog: tc.yml\nformat: yaml\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		assert.NoError(t, validator.ValidateFile(path))
	})

	t.Run("invalid format in file", func(t *testing.T) {
		t.Setenv("TC_FORMAT", "")

		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "format: markdown\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		err := validator.ValidateFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "format")
	})
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "format", Message: "must be one of yaml, json, table"},
		{Field: "catalog", Message: "must not be empty"},
	}

	msg := errs.Error()
	assert.Contains(t, msg, "config validation failed")
	assert.Contains(t, msg, "format: must be one of yaml, json, table")
	assert.Contains(t, msg, "catalog: must not be empty")

	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())
}

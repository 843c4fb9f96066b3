package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pegasus-wms/tc/internal/config"
	oerrors "github.com/pegasus-wms/tc/internal/errors"
	"github.com/pegasus-wms/tc/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the tc configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. File parses as YAML
  3. Values satisfy the configuration schema (known settings,
     valid format names)

The config path is resolved using precedence:
  --config flag > TC_CONFIG env > ~/.tc/config.yaml

Examples:
  # Validate the default configuration
  tc config vet

  # Validate a specific file
  tc config vet --config ./ci/tc-config.yaml`,
		RunE: runConfigVet,
	}

	return cmd
}

// runConfigVet executes the config vet command.
func runConfigVet(cmd *cobra.Command, args []string) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: GetConfigPath(),
	})
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	configPath := pathResult.Value

	output.Debug("validating config",
		"path", configPath,
		"source", pathResult.Source,
	)

	exists, err := config.ConfigFileExists(configPath)
	if err != nil {
		return fmt.Errorf("checking %s: %w", configPath, err)
	}
	if !exists {
		return &oerrors.ExitError{
			Code: oerrors.ExitNotFound,
			Err: &oerrors.DetailError{
				Type:     "not found",
				Message:  "configuration file not found",
				Location: configPath,
				Hint:     "Run `tc config init` to create one.",
				Cause:    oerrors.ErrNotFound,
			},
		}
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("loading config schema: %w", err)
	}

	if err := validator.ValidateFile(configPath); err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  fmt.Errorf("config %s: %w", configPath, err),
		}
	}

	output.Println(output.FormatCheckmark("Configuration valid: " + configPath))
	return nil
}

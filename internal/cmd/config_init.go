package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pegasus-wms/tc/internal/config"
	oerrors "github.com/pegasus-wms/tc/internal/errors"
	"github.com/pegasus-wms/tc/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Write a starter tc configuration file.

Creates ~/.tc/config.yaml with every setting present but commented
out, so the file documents itself without changing any behavior.

Examples:
  # Write the starter configuration
  tc config init

  # Overwrite an existing configuration
  tc config init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

// runConfigInit executes the config init command.
func runConfigInit(force bool) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return fmt.Errorf("determining home directory: %w", err)
	}

	exists, err := config.ConfigFileExists(paths.ConfigFile)
	if err != nil {
		return fmt.Errorf("checking %s: %w", paths.ConfigFile, err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: paths.ConfigFile,
			Hint:     "Use --force to overwrite it.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := os.MkdirAll(paths.HomeDir, 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", paths.HomeDir, err)
	}

	if err := os.WriteFile(paths.ConfigFile, []byte(config.DefaultConfigTemplate), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", paths.ConfigFile, err)
	}

	output.Println(output.FormatCheckmark("Configuration written to " + paths.ConfigFile))
	output.Println("")
	output.Println("Validate with: tc config vet")

	return nil
}

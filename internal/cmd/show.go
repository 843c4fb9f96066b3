package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pegasus-wms/tc/internal/cmdutil"
	"github.com/pegasus-wms/tc/internal/config"
	oerrors "github.com/pegasus-wms/tc/internal/errors"
	"github.com/pegasus-wms/tc/internal/output"
)

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	var of cmdutil.OutputFlags

	cmd := &cobra.Command{
		Use:   "show [catalog]",
		Short: "Display a transformation catalog",
		Long: `Display a transformation catalog.

The catalog path is resolved using precedence:
  positional argument > TC_CATALOG env > config catalog > tc.yml

The default table view lists transformations with their sites and
containers with their images. YAML and JSON output emit the catalog
document itself, so either can be redirected into a new catalog file.

Examples:
  # Show the default catalog as a table
  tc show

  # Show a specific catalog
  tc show workflows/tc.yml

  # Emit the catalog document as JSON
  tc show -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args, &of)
		},
	}

	of.AddTo(cmd)

	return cmd
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, args []string, of *cmdutil.OutputFlags) error {
	cat, _, err := cmdutil.LoadCatalog(cmdutil.LoadOpts{
		Args:   args,
		Config: GetConfig(),
	})
	if err != nil {
		return err
	}

	var configFormat string
	if cfg := GetConfig(); cfg != nil {
		configFormat = cfg.Format
	}

	// show renders a table by default; the configured format still wins
	// when one is set.
	resolved := config.ResolveFormat(config.ResolveFormatOptions{
		FlagValue:   of.Output,
		ConfigValue: configFormat,
		Default:     output.FormatTable.String(),
	})

	format, err := parseOutputFormat(resolved.Value)
	if err != nil {
		return err
	}

	return output.WriteCatalog(cat, output.CatalogOptions{
		Format: format,
		Writer: cmd.OutOrStdout(),
	})
}

// parseOutputFormat parses an output format string strictly, unlike
// output.ParseFormat which falls back to YAML.
func parseOutputFormat(s string) (output.Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml", "json", "table":
		return output.ParseFormat(s), nil
	default:
		return "", &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err:  fmt.Errorf("invalid output format %q (valid: %s)", s, strings.Join(output.ValidFormats(), ", ")),
		}
	}
}

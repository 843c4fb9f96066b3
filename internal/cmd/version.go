package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pegasus-wms/tc/internal/output"
	"github.com/pegasus-wms/tc/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show tc version information.

Displays:
  - tc version, commit, and build date
  - Go runtime version
  - CUE SDK version (embedded, used for schema validation)`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	output.Println(version.Get().String())
	return nil
}

// Package cmdutil provides shared helpers for tc subcommands: flag
// groups and catalog loading.
package cmdutil

import (
	"github.com/spf13/cobra"
)

// OutputFlags holds the output format flag for commands that print
// catalogs.
type OutputFlags struct {
	Output string
}

// AddTo registers the output format flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Output, "output", "o", "",
		"Output format: yaml, json, or table (default: from config)")
}

// CatalogPathFromArgs returns the catalog path from command args, or
// empty when the path should come from the precedence chain instead.
func CatalogPathFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pegasus-wms/tc/internal/diff"
	"github.com/pegasus-wms/tc/internal/output"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare two transformation catalogs",
		Long: `Compare two transformation catalogs.

Entries are matched by identity: transformations by
namespace/name/version, containers by name. Matched entries with
different content are shown with a semantic YAML diff (via dyff), so
formatting-only differences between the files do not show up.

Because the version is part of a transformation's identity, a version
bump appears as one entry removed and one added, not as a modification.

The exit code is 0 whether or not differences exist; only failures to
read or parse a catalog are errors.

Examples:
  # Compare two catalog files
  tc diff tc.yml tc-new.yml

  # Formats can be mixed
  tc diff tc.yml tc.json`,
		Args: cobra.ExactArgs(2),
		RunE: runDiff,
	}

	return cmd
}

// runDiff executes the diff command.
func runDiff(cmd *cobra.Command, args []string) error {
	oldPath, newPath := args[0], args[1]

	output.Debug("comparing catalogs", "old", oldPath, "new", newPath)

	result, err := diff.CompareFiles(oldPath, newPath, diff.Options{
		UseColor: output.IsTTY(),
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if result.IsEmpty() {
		fmt.Fprintln(w, "No changes detected.")
		return nil
	}

	modified := make([]output.ModifiedItem, 0, len(result.Modified))
	for _, m := range result.Modified {
		modified = append(modified, output.ModifiedItem{Name: m.Name, Diff: m.Diff})
	}

	fmt.Fprint(w, output.RenderDiff(result.Added, result.Removed, modified))
	return nil
}

package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pegasus-wms/tc/pkg/catalog"
)

// entityTable builds the chrome shared by the catalog listing tables:
// normal border in dim gray, bold headers, plain cells.
func entityTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDimGray)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return StyleTableHeader
			}
			return lipgloss.NewStyle()
		})
}

// TransformationsTable renders transformations as a styled table. Sites
// carry their type in parentheses; requires lists required names.
func TransformationsTable(transformations []*catalog.Transformation) string {
	t := entityTable("NAMESPACE", "NAME", "VERSION", "SITES", "REQUIRES")

	for _, tr := range transformations {
		t.Row(
			tr.Namespace(),
			tr.Name(),
			tr.Version(),
			joinSiteNames(tr.Sites()),
			joinRequirementNames(tr.Requires()),
		)
	}

	return t.String()
}

// ContainersTable renders containers as a styled table.
func ContainersTable(containers []*catalog.Container) string {
	t := entityTable("NAME", "TYPE", "IMAGE", "MOUNT")

	for _, c := range containers {
		t.Row(c.Name, c.Type.String(), c.Image, c.Mount)
	}

	return t.String()
}

// joinSiteNames joins site names with their transformation type.
func joinSiteNames(sites []*catalog.TransformationSite) string {
	parts := make([]string, 0, len(sites))
	for _, s := range sites {
		parts = append(parts, fmt.Sprintf("%s (%s)", s.Name, s.Type))
	}
	return strings.Join(parts, ", ")
}

// joinRequirementNames joins required transformation names.
func joinRequirementNames(keys []catalog.TransformationKey) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k.Name)
	}
	return strings.Join(parts, ", ")
}

package output

import (
	"fmt"
	"strings"
)

// ModifiedItem represents a modified catalog entry for rendering.
type ModifiedItem struct {
	Name string
	Diff string
}

// RenderDiff renders catalog differences grouped into added, removed, and
// modified entries. Entry names are pre-formatted identifiers such as
// "transformation example::keg:1.0" or "container centos-pegasus".
func RenderDiff(added, removed []string, modified []ModifiedItem) string {
	if len(added) == 0 && len(removed) == 0 && len(modified) == 0 {
		return "No changes detected."
	}

	var sb strings.Builder

	if len(added) > 0 {
		sb.WriteString(StyleSuccess.Render("Added:"))
		sb.WriteString("\n")
		for _, name := range added {
			sb.WriteString("  + ")
			sb.WriteString(StyleSuccess.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(removed) > 0 {
		sb.WriteString(StyleError.Render("Removed:"))
		sb.WriteString("\n")
		for _, name := range removed {
			sb.WriteString("  - ")
			sb.WriteString(StyleError.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(modified) > 0 {
		sb.WriteString(StyleWarning.Render("Modified:"))
		sb.WriteString("\n")
		for _, mod := range modified {
			sb.WriteString("  ~ ")
			sb.WriteString(StyleWarning.Render(mod.Name))
			sb.WriteString("\n")
			if mod.Diff != "" {
				sb.WriteString(IndentDiff(mod.Diff, "    "))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("Summary: ")
	sb.WriteString(diffSummary(len(added), len(removed), len(modified)))
	sb.WriteString("\n")

	return sb.String()
}

// IndentDiff indents a diff string for display under an entry name.
func IndentDiff(diff string, indent string) string {
	if diff == "" {
		return ""
	}

	var sb strings.Builder
	lines := strings.Split(diff, "\n")
	for _, line := range lines {
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// diffSummary returns a summary string of changes.
func diffSummary(added, removed, modified int) string {
	if added == 0 && removed == 0 && modified == 0 {
		return "No changes"
	}

	parts := make([]string, 0, 3)
	if added > 0 {
		parts = append(parts, fmt.Sprintf("%d added", added))
	}
	if removed > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", removed))
	}
	if modified > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", modified))
	}

	return strings.Join(parts, ", ")
}

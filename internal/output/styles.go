package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: transformation keys, container names, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "valid" entry status and added diff entries.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for modified diff entries and warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for the "invalid" entry status and removed diff entries.
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for the "error" entry status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (transformation keys, container names, file paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (loading, validating, converting).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (entry prefixes, separators, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleSuccess styles added diff entries and success headers.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleError styles removed diff entries and error headers.
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleWarning styles modified diff entries and warning headers.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleTableHeader styles the header row of listing tables.
	StyleTableHeader = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
)

// Catalog entry status constants.
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
	StatusError   = "error"
)

// StatusStyle returns the lipgloss style for a given entry status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusValid:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusInvalid:
		return lipgloss.NewStyle().Foreground(ColorRed)
	case StatusError:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minEntryColumnWidth is the minimum width for the entry identifier column
// before the status suffix. This ensures status words align consistently.
const minEntryColumnWidth = 48

// FormatEntryLine renders a catalog entry identifier with a right-aligned,
// color-coded status suffix.
//
// Format: <prefix><identifier>  <status>
// The prefix ("t:" for transformations, "c:" for containers) is dim, the
// identifier is cyan, and the status uses StatusStyle.
func FormatEntryLine(prefix, identifier, status string) string {
	padding := minEntryColumnWidth - len(prefix) - len(identifier)
	if padding < 2 {
		padding = 2
	}

	styledPrefix := StyleDim.Render(prefix)
	styledID := StyleNoun.Render(identifier)
	styledStatus := StatusStyle(status).Render(status)

	return styledPrefix + styledID + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// minCheckLabelWidth is the minimum width for a vet check label before the
// detail suffix. This ensures detail text aligns consistently.
const minCheckLabelWidth = 24

// FormatVetCheck renders a passing vet check with an optionally aligned,
// dimmed detail suffix.
func FormatVetCheck(label, detail string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	if detail == "" {
		return check + " " + label
	}

	padding := minCheckLabelWidth - len(label)
	if padding < 2 {
		padding = 2
	}
	return check + " " + label + strings.Repeat(" ", padding) + StyleDim.Render(detail)
}

// FormatCount renders a labeled count, pluralizing the label when needed.
// The label must pluralize with a trailing "s".
func FormatCount(count int, label string) string {
	if count == 1 {
		return fmt.Sprintf("1 %s", label)
	}
	return fmt.Sprintf("%d %ss", count, label)
}

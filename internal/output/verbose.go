package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// VetOptions controls vet result output.
type VetOptions struct {
	// JSON outputs structured JSON instead of human-readable text
	JSON bool
	// Writer is the output destination
	Writer io.Writer
}

// vetResult is the structured vet output.
type vetResult struct {
	File            string     `json:"file"`
	FormatVersion   string     `json:"formatVersion,omitempty"`
	Valid           bool       `json:"valid"`
	Checks          []vetCheck `json:"checks"`
	Transformations []vetEntry `json:"transformations,omitempty"`
	Containers      []vetEntry `json:"containers,omitempty"`
	Errors          []string   `json:"errors,omitempty"`
	Warnings        []string   `json:"warnings,omitempty"`
}

// vetCheck describes a single validation check.
type vetCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// vetEntry describes a catalog entry and its validation status.
type vetEntry struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// VetResultInfo provides access to vet result data without importing the
// command package.
type VetResultInfo struct {
	File            string
	FormatVersion   string
	Checks          []VetCheckInfo
	Transformations []VetEntryInfo
	Containers      []VetEntryInfo
	Errors          []error
	Warnings        []string
}

// VetCheckInfo provides data for a single validation check.
type VetCheckInfo struct {
	Name   string
	Status string
	Detail string
}

// VetEntryInfo provides data for a single catalog entry.
type VetEntryInfo struct {
	ID     string
	Status string
}

// WriteVetResult writes vet output from a VetResultInfo.
func WriteVetResult(result *VetResultInfo, opts VetOptions) error {
	vetResult := buildVetResultFromInfo(result)

	if opts.JSON {
		return writeVetJSON(vetResult, opts.Writer)
	}
	return writeVetHuman(vetResult, opts.Writer)
}

// buildVetResultFromInfo constructs vet result from info.
func buildVetResultFromInfo(result *VetResultInfo) *vetResult {
	vr := &vetResult{
		File:          result.File,
		FormatVersion: result.FormatVersion,
		Valid:         true,
		Checks:        make([]vetCheck, 0, len(result.Checks)),
		Warnings:      result.Warnings,
	}

	for _, c := range result.Checks {
		if c.Status != StatusValid {
			vr.Valid = false
		}
		vr.Checks = append(vr.Checks, vetCheck{
			Name:   c.Name,
			Status: c.Status,
			Detail: c.Detail,
		})
	}

	for _, e := range result.Transformations {
		vr.Transformations = append(vr.Transformations, vetEntry{ID: e.ID, Status: e.Status})
	}
	for _, e := range result.Containers {
		vr.Containers = append(vr.Containers, vetEntry{ID: e.ID, Status: e.Status})
	}

	for _, err := range result.Errors {
		vr.Valid = false
		vr.Errors = append(vr.Errors, err.Error())
	}

	return vr
}

// writeVetJSON writes vet output as JSON.
func writeVetJSON(result *vetResult, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeVetHuman writes vet output in human-readable format.
func writeVetHuman(result *vetResult, w io.Writer) error {
	var sb strings.Builder

	// Catalog info
	sb.WriteString("Catalog:\n")
	sb.WriteString(fmt.Sprintf("  File:    %s\n", result.File))
	if result.FormatVersion != "" {
		sb.WriteString(fmt.Sprintf("  Version: %s\n", result.FormatVersion))
	}
	sb.WriteString("\n")

	// Check results
	sb.WriteString("Checks:\n")
	for _, c := range result.Checks {
		if c.Status == StatusValid {
			sb.WriteString("  " + FormatVetCheck(c.Name, c.Detail) + "\n")
			continue
		}
		sb.WriteString(fmt.Sprintf("  ✗ %s\n", c.Name))
		if c.Detail != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", c.Detail))
		}
	}
	sb.WriteString("\n")

	// Entries
	if len(result.Transformations) > 0 {
		sb.WriteString("Transformations:\n")
		for _, e := range result.Transformations {
			line := FormatEntryLine("t:", e.ID, e.Status)
			sb.WriteString("  " + line + "\n")
		}
		sb.WriteString("\n")
	}

	if len(result.Containers) > 0 {
		sb.WriteString("Containers:\n")
		for _, e := range result.Containers {
			line := FormatEntryLine("c:", e.ID, e.Status)
			sb.WriteString("  " + line + "\n")
		}
		sb.WriteString("\n")
	}

	// Warnings
	if len(result.Warnings) > 0 {
		sb.WriteString("Warnings:\n")
		for _, warning := range result.Warnings {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", warning))
		}
		sb.WriteString("\n")
	}

	// Errors
	if len(result.Errors) > 0 {
		sb.WriteString("Errors:\n")
		for _, e := range result.Errors {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", e))
		}
	}

	_, err := w.Write([]byte(sb.String()))
	return err
}

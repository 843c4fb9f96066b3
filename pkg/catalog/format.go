package catalog

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileFormat selects the on-disk serialization format for a catalog. The
// enum values double as the default file extensions.
type FileFormat string

const (
	// FormatYAML writes the catalog as YAML, extension "yml".
	FormatYAML FileFormat = "yml"

	// FormatJSON writes the catalog as indented JSON, extension "json".
	FormatJSON FileFormat = "json"
)

// String returns the string representation of the file format.
func (f FileFormat) String() string {
	return string(f)
}

// Ext returns the file extension for this format, without the dot.
func (f FileFormat) Ext() string {
	return string(f)
}

// IsValid checks if the file format is valid.
func (f FileFormat) IsValid() bool {
	switch f {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFileFormat parses a string into a FileFormat. It accepts "yaml",
// "yml" and "json" case-insensitively and fails with an error wrapping
// ErrInvalidValue on anything else.
func ParseFileFormat(s string) (FileFormat, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("file format %q: %w", s, ErrInvalidValue)
	}
}

// DetectFileFormat derives a format from a file path's extension.
// Unrecognized or missing extensions fall back to YAML, the catalog's
// canonical format.
func DetectFileFormat(path string) FileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

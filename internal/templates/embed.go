// Package templates provides the embedded starter catalogs written by
// "tc init".
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"text/template"

	"github.com/pegasus-wms/tc/pkg/catalog"
)

//go:embed minimal standard containerized
var templatesFS embed.FS

// TemplateName identifies a starter catalog template.
type TemplateName string

const (
	// Minimal is the smallest valid catalog: one transformation with a
	// single site.
	Minimal TemplateName = "minimal"

	// Standard is the default template: a namespaced, versioned
	// transformation with platform attributes and profiles.
	Standard TemplateName = "standard"

	// Containerized describes a transformation that runs inside a
	// container image.
	Containerized TemplateName = "containerized"
)

// DefaultTemplate is used when --template is not specified.
const DefaultTemplate = Standard

// ValidTemplates returns all valid template names.
func ValidTemplates() []string {
	return []string{
		string(Minimal),
		string(Standard),
		string(Containerized),
	}
}

// IsValidTemplate checks if a template name is valid.
func IsValidTemplate(name string) bool {
	switch TemplateName(name) {
	case Minimal, Standard, Containerized:
		return true
	default:
		return false
	}
}

// TemplateData contains data for template rendering.
type TemplateData struct {
	// Name is the transformation name (e.g., "keg").
	Name string

	// Namespace is the optional transformation namespace. Omitted from
	// the rendered catalog when empty.
	Namespace string

	// Version is the optional transformation version. Omitted from the
	// rendered catalog when empty.
	Version string

	// Site is the execution site name (e.g., "condorpool").
	Site string

	// FormatVersion is the catalog format version for the document
	// envelope. Defaults to the current format version when empty.
	FormatVersion string
}

// Render executes the named template and returns the catalog document
// it produces. The output is YAML with explanatory comments intact.
func Render(name TemplateName, data TemplateData) ([]byte, error) {
	if !IsValidTemplate(string(name)) {
		return nil, fmt.Errorf("unknown template: %s", name)
	}
	if data.FormatVersion == "" {
		data.FormatVersion = catalog.FormatVersion
	}

	file := path.Join(string(name), "tc.yml.tmpl")
	content, err := fs.ReadFile(templatesFS, file)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", file, err)
	}

	tmpl, err := template.New(path.Base(file)).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", file, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", file, err)
	}
	return buf.Bytes(), nil
}

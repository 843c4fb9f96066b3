package output

import (
	"io"
	"strings"

	"github.com/pegasus-wms/tc/pkg/catalog"
)

// CatalogOptions controls catalog output formatting.
type CatalogOptions struct {
	// Format specifies output format: yaml, json, or table
	Format Format
	// Writer is the output destination
	Writer io.Writer
}

// WriteCatalog writes a catalog to the writer in the specified format.
func WriteCatalog(c *catalog.TransformationCatalog, opts CatalogOptions) error {
	switch opts.Format {
	case FormatJSON:
		return c.WriteTo(opts.Writer, catalog.FormatJSON)
	case FormatYAML:
		return c.WriteTo(opts.Writer, catalog.FormatYAML)
	case FormatTable:
		return writeCatalogTable(c, opts.Writer)
	}
	return c.WriteTo(opts.Writer, catalog.FormatYAML) // Default to YAML
}

// writeCatalogTable renders the catalog as styled tables with a summary line.
func writeCatalogTable(c *catalog.TransformationCatalog, w io.Writer) error {
	var sb strings.Builder

	transformations := c.Transformations()
	containers := c.Containers()

	sb.WriteString(TransformationsTable(transformations))
	sb.WriteString("\n")

	if len(containers) > 0 {
		sb.WriteString(ContainersTable(containers))
		sb.WriteString("\n")
	}

	summary := FormatCount(len(transformations), "transformation")
	if len(containers) > 0 {
		summary += ", " + FormatCount(len(containers), "container")
	}
	sb.WriteString(StyleSummary.Render(summary))
	sb.WriteString("\n")

	_, err := w.Write([]byte(sb.String()))
	return err
}

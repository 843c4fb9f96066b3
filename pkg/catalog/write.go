package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"sigs.k8s.io/yaml"
)

// FormatVersion is the catalog schema version stamped into every written
// document under the "pegasus" key.
const FormatVersion = "5.0"

// Doc is the serialized form of a whole catalog: the envelope the planner
// consumes. Field names and omission rules follow the catalog file
// format; absent optionals are dropped entirely, never emitted as null.
type Doc struct {
	Pegasus         string              `json:"pegasus"`
	Transformations []TransformationDoc `json:"transformations"`
	Containers      []*Container        `json:"containers,omitempty"`
}

// TransformationDoc is the serialized form of one transformation. The
// requires list carries required transformation names only — the format
// drops a requirement's namespace and version, so same-named
// transformations in different namespaces are not distinguishable on
// reload.
type TransformationDoc struct {
	Namespace string                 `json:"namespace,omitempty"`
	Name      string                 `json:"name"`
	Version   string                 `json:"version,omitempty"`
	Requires  []string               `json:"requires,omitempty"`
	Sites     []*TransformationSite  `json:"sites"`
	Profiles  Profiles               `json:"profiles,omitempty"`
	Hooks     map[string][]ShellHook `json:"hooks,omitempty"`
}

// doc flattens the transformation into its serialized form.
func (t *Transformation) doc() TransformationDoc {
	d := TransformationDoc{
		Namespace: t.namespace,
		Name:      t.name,
		Version:   t.version,
		Sites:     t.Sites(),
	}

	if len(t.requires) > 0 {
		names := make([]string, 0, len(t.requires))
		for key := range t.requires {
			names = append(names, key.Name)
		}
		sort.Strings(names)
		d.Requires = names
	}
	if len(t.profiles) > 0 {
		d.Profiles = t.profiles
	}
	if len(t.hooks) > 0 {
		d.Hooks = t.hooks
	}

	return d
}

// Doc builds the serialized document for the whole catalog:
// transformations and containers in insertion order under the versioned
// envelope. The containers list is omitted when empty.
func (c *TransformationCatalog) Doc() Doc {
	doc := Doc{
		Pegasus:         FormatVersion,
		Transformations: make([]TransformationDoc, 0, len(c.transformationOrder)),
	}

	for _, t := range c.Transformations() {
		doc.Transformations = append(doc.Transformations, t.doc())
	}
	if len(c.containerOrder) > 0 {
		doc.Containers = c.Containers()
	}

	return doc
}

// WriteTo serializes the catalog to w in the given format. YAML output
// has keys sorted within each mapping; JSON output keeps document field
// order and is indented with four spaces. An unrecognized format fails
// with an error wrapping ErrInvalidValue.
func (c *TransformationCatalog) WriteTo(w io.Writer, format FileFormat) error {
	doc := c.Doc()

	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encoding catalog as YAML: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing catalog: %w", err)
		}
		return nil

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "    ")
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("encoding catalog as JSON: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("file format %q: %w", format, ErrInvalidValue)
	}
}

// Write serializes the catalog to a file. An explicit path wins; given an
// empty path the catalog's FilePath stem plus the format's extension is
// used instead.
func (c *TransformationCatalog) Write(path string, format FileFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("file format %q: %w", format, ErrInvalidValue)
	}

	if path == "" {
		stem := c.FilePath
		if stem == "" {
			stem = DefaultFilePath
		}
		path = stem + "." + format.Ext()
	}

	var buf bytes.Buffer
	if err := c.WriteTo(&buf, format); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing catalog file: %w", err)
	}
	return nil
}

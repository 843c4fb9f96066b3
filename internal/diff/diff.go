// Package diff compares two transformation catalogs entry by entry and
// renders semantic YAML diffs for entries present in both.
package diff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"sigs.k8s.io/yaml"

	"github.com/pegasus-wms/tc/pkg/catalog"
)

// Result represents a diff between two catalogs.
type Result struct {
	// HasChanges indicates if there are differences.
	HasChanges bool

	// Added entries (in the new catalog, not in the old).
	Added []string

	// Removed entries (in the old catalog, not in the new).
	Removed []string

	// Modified entries (present in both with differences).
	Modified []ModifiedEntry
}

// ModifiedEntry represents an entry with changes.
type ModifiedEntry struct {
	// Name is the entry identifier ("transformation <key>" or
	// "container <name>").
	Name string

	// Diff is the rendered diff output.
	Diff string
}

// NewResult creates a new empty Result.
func NewResult() *Result {
	return &Result{
		Added:    make([]string, 0),
		Removed:  make([]string, 0),
		Modified: make([]ModifiedEntry, 0),
	}
}

// IsEmpty returns true if there are no changes.
func (r *Result) IsEmpty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Modified) == 0
}

// AddAdded records an entry that only the new catalog has.
func (r *Result) AddAdded(name string) {
	r.Added = append(r.Added, name)
	r.HasChanges = true
}

// AddRemoved records an entry that only the old catalog has.
func (r *Result) AddRemoved(name string) {
	r.Removed = append(r.Removed, name)
	r.HasChanges = true
}

// AddModified records an entry with modifications.
func (r *Result) AddModified(name, diff string) {
	r.Modified = append(r.Modified, ModifiedEntry{
		Name: name,
		Diff: diff,
	})
	r.HasChanges = true
}

// Options configures the diff operation.
type Options struct {
	// UseColor enables colorized diff output.
	UseColor bool
}

// CompareFiles loads two catalog files and compares them.
func CompareFiles(oldPath, newPath string, opts Options) (*Result, error) {
	oldCat, err := catalog.Load(oldPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", oldPath, err)
	}

	newCat, err := catalog.Load(newPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", newPath, err)
	}

	return Compare(oldCat, newCat, opts)
}

// Compare computes the difference between two catalogs. Entries are
// matched by identity: transformations by namespace/name/version,
// containers by name. Matched entries are compared on their serialized
// form, so a difference in any field shows up.
func Compare(oldCat, newCat *catalog.TransformationCatalog, opts Options) (*Result, error) {
	result := NewResult()

	oldDoc := oldCat.Doc()
	newDoc := newCat.Doc()

	oldTransformations := transformationIndex(oldDoc)
	newTransformations := transformationIndex(newDoc)

	// Added and modified transformations, in the new catalog's order
	for _, td := range newDoc.Transformations {
		key := transformationDocKey(td)
		name := "transformation " + key.String()

		oldTD, ok := oldTransformations[key]
		if !ok {
			result.AddAdded(name)
			continue
		}

		entryDiff, err := compareDocs(oldTD, td, opts.UseColor)
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", name, err)
		}
		if entryDiff != "" {
			result.AddModified(name, entryDiff)
		}
	}

	// Removed transformations, in the old catalog's order
	for _, td := range oldDoc.Transformations {
		key := transformationDocKey(td)
		if _, ok := newTransformations[key]; !ok {
			result.AddRemoved("transformation " + key.String())
		}
	}

	oldContainers := containerIndex(oldDoc)
	newContainers := containerIndex(newDoc)

	// Added and modified containers, in the new catalog's order
	for _, container := range newDoc.Containers {
		name := "container " + container.Name

		oldContainer, ok := oldContainers[container.Name]
		if !ok {
			result.AddAdded(name)
			continue
		}

		entryDiff, err := compareDocs(oldContainer, container, opts.UseColor)
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", name, err)
		}
		if entryDiff != "" {
			result.AddModified(name, entryDiff)
		}
	}

	// Removed containers, in the old catalog's order
	for _, container := range oldDoc.Containers {
		if _, ok := newContainers[container.Name]; !ok {
			result.AddRemoved("container " + container.Name)
		}
	}

	return result, nil
}

// transformationIndex maps serialized transformations by identity key.
func transformationIndex(doc catalog.Doc) map[catalog.TransformationKey]catalog.TransformationDoc {
	index := make(map[catalog.TransformationKey]catalog.TransformationDoc, len(doc.Transformations))
	for _, td := range doc.Transformations {
		index[transformationDocKey(td)] = td
	}
	return index
}

// transformationDocKey rebuilds the identity key of a serialized
// transformation.
func transformationDocKey(td catalog.TransformationDoc) catalog.TransformationKey {
	return catalog.TransformationKey{
		Name:      td.Name,
		Namespace: td.Namespace,
		Version:   td.Version,
	}
}

// containerIndex maps serialized containers by name.
func containerIndex(doc catalog.Doc) map[string]*catalog.Container {
	index := make(map[string]*catalog.Container, len(doc.Containers))
	for _, container := range doc.Containers {
		index[container.Name] = container
	}
	return index
}

// compareDocs compares the serialized forms of two entries and returns a
// diff string. Returns empty string if no differences.
func compareDocs(oldEntry, newEntry any, useColor bool) (string, error) {
	oldYAML, err := yaml.Marshal(oldEntry)
	if err != nil {
		return "", fmt.Errorf("serializing old entry: %w", err)
	}

	newYAML, err := yaml.Marshal(newEntry)
	if err != nil {
		return "", fmt.Errorf("serializing new entry: %w", err)
	}

	return diffYAML(oldYAML, newYAML, useColor)
}

// diffYAML computes a YAML-aware diff using dyff.
func diffYAML(oldData, newData []byte, useColor bool) (string, error) {
	// Handle empty inputs
	if len(oldData) == 0 && len(newData) == 0 {
		return "", nil
	}

	oldInput, err := parseYAMLInput("old", oldData)
	if err != nil {
		return "", fmt.Errorf("parsing old YAML: %w", err)
	}

	newInput, err := parseYAMLInput("new", newData)
	if err != nil {
		return "", fmt.Errorf("parsing new YAML: %w", err)
	}

	// Compare the inputs
	report, err := dyff.CompareInputFiles(oldInput, newInput)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}

	// If no differences, return empty string
	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

// parseYAMLInput parses YAML bytes into a dyff input file.
func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{
			Location:  name,
			Documents: nil,
		}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

// renderDyffReport renders a dyff report to a string.
func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	result := buf.String()

	// Clean up output - remove trailing whitespace from lines
	lines := strings.Split(result, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

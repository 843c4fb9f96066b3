// Package schema validates transformation catalog documents against the
// embedded CUE schema. The model loader in pkg/catalog is deliberately
// tolerant (it ignores unknown fields); this package is the strict check
// behind "tc vet" that catches typos and malformed documents.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.cue
var catalogSchemaCUE []byte

// ValidationError represents one schema violation in a document.
type ValidationError struct {
	// Field is the dotted path to the offending field.
	Field string
	// Message describes the violation.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of schema violations.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("catalog validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validator validates catalog documents against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new catalog document validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	compiled := ctx.CompileBytes(catalogSchemaCUE)
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	schema := compiled.LookupPath(cue.ParsePath("#Catalog"))
	if !schema.Exists() {
		return nil, fmt.Errorf("embedded schema has no #Catalog definition")
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// Validate checks raw document bytes against the schema. Both YAML and
// JSON documents are accepted. Violations are returned as
// ValidationErrors with dotted field paths.
func (v *Validator) Validate(data []byte) error {
	val, err := v.decode(data)
	if err != nil {
		return err
	}

	// Concrete validation flags absent required fields (name, pfn,
	// pegasus) as incomplete, not just mistyped ones.
	unified := v.schema.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		var errs ValidationErrors
		for _, e := range cueerrors.Errors(err) {
			errs = append(errs, ValidationError{
				Field:   strings.Join(e.Path(), "."),
				Message: e.Error(),
			})
		}
		return errs
	}

	return nil
}

// ValidateFile validates a catalog document file at the given path.
func (v *Validator) ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading catalog file: %w", err)
	}

	if err := v.Validate(data); err != nil {
		return fmt.Errorf("catalog %s: %w", path, err)
	}
	return nil
}

// decode parses YAML or JSON document bytes into a CUE value. JSON is a
// YAML subset, so a single YAML parse covers both.
func (v *Validator) decode(data []byte) (cue.Value, error) {
	var parsed any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return cue.Value{}, fmt.Errorf("parsing document: %w", err)
	}

	// Convert to JSON-compatible form, then to CUE
	jsonData, err := json.Marshal(normalizeYAML(parsed))
	if err != nil {
		return cue.Value{}, fmt.Errorf("converting document to JSON: %w", err)
	}

	value := v.ctx.CompileBytes(jsonData)
	if value.Err() != nil {
		return cue.Value{}, fmt.Errorf("converting document to CUE: %w", value.Err())
	}
	return value, nil
}

// normalizeYAML converts YAML-specific types to JSON-compatible types.
// YAML allows map keys of any type, but JSON requires strings.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, v := range val {
			result[k] = normalizeYAML(v)
		}
		return result
	case map[any]any:
		result := make(map[string]any, len(val))
		for k, v := range val {
			result[fmt.Sprintf("%v", k)] = normalizeYAML(v)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, v := range val {
			result[i] = normalizeYAML(v)
		}
		return result
	default:
		return v
	}
}

package config

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	// Compile the embedded schema
	compiled := ctx.CompileBytes(configSchemaCUE)
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	schema := compiled.LookupPath(cue.ParsePath("#Config"))
	if !schema.Exists() {
		return nil, fmt.Errorf("embedded schema has no #Config definition")
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// Validate validates the given configuration.
func (v *Validator) Validate(cfg *Config) error {
	var errs ValidationErrors

	// Whitespace-only values slip past the schema's != "" constraint
	if cfg.Catalog != "" && strings.TrimSpace(cfg.Catalog) == "" {
		errs = append(errs, ValidationError{
			Field:   "catalog",
			Message: "must not be whitespace only",
		})
	}

	val := v.ctx.Encode(cfg)
	if val.Err() != nil {
		return fmt.Errorf("encoding config: %w", val.Err())
	}

	unified := v.schema.Unify(val)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		for _, e := range cueerrors.Errors(err) {
			errs = append(errs, ValidationError{
				Field:   strings.Join(e.Path(), "."),
				Message: e.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateFile validates a configuration file at the given path.
func (v *Validator) ValidateFile(path string) error {
	loader := NewLoader()
	cfg, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}

	return v.Validate(cfg)
}

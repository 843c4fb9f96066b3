package errors

import (
	"errors"
	"os"

	"github.com/pegasus-wms/tc/pkg/catalog"
)

// Exit codes returned by the tc binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates a catalog failed schema or enum validation.
	ExitValidationError = 2

	// ExitNotFound indicates a catalog, transformation, or file was not found.
	ExitNotFound = 3
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed records whether the command layer already rendered the error.
	// main checks it to avoid printing the same error twice.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
// Errors from the catalog library map onto the CLI's exit codes: invalid
// enum values and duplicate entries are validation failures, missing
// entries and missing files are not-found failures.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for ExitError first
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, catalog.ErrInvalidValue):
		return ExitValidationError
	case errors.Is(err, catalog.ErrDuplicate):
		return ExitValidationError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, catalog.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, os.ErrNotExist):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

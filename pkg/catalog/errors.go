package catalog

import "errors"

// Sentinel errors for catalog invariant violations. Operations wrap these
// with the offending identity so callers can match with errors.Is while
// still seeing what collided or went missing.
var (
	// ErrDuplicate indicates an insertion of an already-present identity:
	// a site name, a container name, a transformation key, or a
	// requirement edge.
	ErrDuplicate = errors.New("duplicate entry")

	// ErrNotFound indicates a lookup or removal of an absent identity.
	ErrNotFound = errors.New("entry not found")

	// ErrInvalidValue indicates a kind or format field that is not one of
	// the recognized options.
	ErrInvalidValue = errors.New("invalid value")
)

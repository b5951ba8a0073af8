package domain

import "errors"

// Domain-specific errors for remap operations.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrConflict is returned when a crossbar connection would claim a
	// position that is already claimed by a different mapping.
	ErrConflict = errors.New("domain: position already claimed")

	// ErrOutOfRange is returned when an index or position falls outside
	// the valid range for the operation.
	ErrOutOfRange = errors.New("domain: index out of range")

	// ErrNotFound is returned when a lookup targets a position that is
	// not a member of the queried object.
	ErrNotFound = errors.New("domain: position not found")
)

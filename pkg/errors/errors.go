// Package errors provides the error types shared by the catalog and its
// persistence layer.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

var (
	// ErrNotFound indicates that no receipt has the requested id.
	ErrNotFound = errors.New("not found")

	// ErrEmptyName indicates an add was skipped because the name was
	// empty after trimming. Callers treat this as a no-op, not a failure.
	ErrEmptyName = errors.New("empty name")

	// ErrNoStore indicates the receipts file does not exist yet.
	// Loading treats this as "start empty".
	ErrNoStore = errors.New("no store")
)

// NotFoundError reports a missing receipt id.
type NotFoundError struct {
	ID uint64
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("receipt with id %d not found", e.ID)
}

// Is implements errors.Is support.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(id uint64) *NotFoundError {
	return &NotFoundError{ID: id}
}

package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every store adapter. Handlers map these to
// HTTP statuses; repositories wrap driver errors into them.
var (
	// ErrNotFound: no item with the requested ID, or it belongs to
	// another owner.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput: the payload failed domain validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPermissionDenied: the store rejected the caller's privileges.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrUnavailable: the store is unreachable, whether from a network
	// fault, a closed pool, or an open circuit breaker.
	ErrUnavailable = errors.New("store unavailable")
)

// ValidationError names the field that failed so API clients can point
// at the offending input instead of guessing.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

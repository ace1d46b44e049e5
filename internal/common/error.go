// Package common defines the error taxonomy shared by the wickit store and
// its repositories. Callers match sentinels with errors.Is and the typed
// errors with errors.As.
package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when an operation that must address an existing
	// record is given an unknown id.
	ErrNotFound = errors.New("not found")

	// ErrStorage is matched by every *StorageError.
	ErrStorage = errors.New("storage error")

	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation error")
)

// StorageError reports a failure of the embedded database engine: I/O,
// locking, constraint violations, corruption or undecodable column data.
// The transaction it happened in has already been rolled back.
type StorageError struct {
	Op  string
	Err error
}

// Error implements error.
func (e *StorageError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("storage error: %v", e.Err)
	}
	return fmt.Sprintf("%s: storage error: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is makes StorageError match ErrStorage.
func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError is returned before any I/O when input fields break a rule.
type ValidationError struct {
	Errors []FieldError
}

// Error lists every rejected field.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Is makes ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

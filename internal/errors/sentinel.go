package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input (names, attributes, config values).
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a project root, file, or template was not found.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a generated file collides with an existing file
	// that has different content.
	ErrConflict = errors.New("conflict")
)

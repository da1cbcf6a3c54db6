package work

import (
	"fmt"
	"strings"

	oerrors "github.com/samvera-labs/workgen/internal/errors"
)

// ReservedName is the resource name that collides with Hyrax's own Work constant.
const ReservedName = "work"

// InvalidNameError reports a resource name that cannot be generated.
type InvalidNameError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid resource name %q: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("Error: A work resource with the name '%s' would cause name-space clashes. Please use a different name.", e.Name)
}

// Unwrap classifies the error as a validation failure.
func (e *InvalidNameError) Unwrap() error {
	return oerrors.ErrValidation
}

// ValidateName rejects names that equal "work" case-insensitively.
func ValidateName(name string) error {
	if strings.EqualFold(strings.TrimSpace(name), ReservedName) {
		return &InvalidNameError{Name: name}
	}
	return nil
}

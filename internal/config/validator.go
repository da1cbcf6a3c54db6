package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samvera-labs/workgen/internal/actions"
	oerrors "github.com/samvera-labs/workgen/internal/errors"
	"github.com/samvera-labs/workgen/internal/generator"
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

// Unwrap classifies the error as a validation failure.
func (e *ValidationError) Unwrap() error {
	return oerrors.ErrValidation
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

// Unwrap classifies the errors as a validation failure.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validate checks enum values and paths. Empty fields are allowed and fall
// back to defaults.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	validTests := generator.ValidTestsModes()
	if cfg.Tests != "" && !slices.Contains(validTests, cfg.Tests) {
		errs = append(errs, ValidationError{
			Field:   "tests",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validTests, ", "), cfg.Tests),
		})
	}

	validOnConflict := actions.ValidPolicies()
	if cfg.OnConflict != "" && !slices.Contains(validOnConflict, cfg.OnConflict) {
		errs = append(errs, ValidationError{
			Field:   "onConflict",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validOnConflict, ", "), cfg.OnConflict),
		})
	}

	if cfg.Initializer != "" && filepath.IsAbs(cfg.Initializer) {
		errs = append(errs, ValidationError{
			Field:   "initializer",
			Message: "must be relative to the project root",
		})
	}

	if cfg.Root != "" && strings.TrimSpace(cfg.Root) == "" {
		errs = append(errs, ValidationError{
			Field:   "root",
			Message: "must not be empty or whitespace only",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateSettings validates resolved settings, which may include values
// from flags and the environment.
func ValidateSettings(s *Settings) error {
	return Validate(&Config{
		Root:        s.Root,
		Initializer: s.Initializer,
		Tests:       s.Tests,
		OnConflict:  s.OnConflict,
	})
}

// ValidateFile validates a configuration file at the given path.
func ValidateFile(path string) error {
	cfg, err := NewLoader().Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	return Validate(cfg)
}

// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/scaffold, internal/cmd/config).
package cmdtypes

import (
	"github.com/samvera-labs/workgen/internal/config"
	oerrors "github.com/samvera-labs/workgen/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the parsed config file. Never nil after PersistentPreRunE.
	Config *config.Config

	// Loader resolves environment overrides for the config keys.
	Loader *config.Loader

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// Verbose enables debug logging.
	Verbose bool

	// Timestamps is the --timestamps flag when given explicitly.
	Timestamps *bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitConflict        = oerrors.ExitConflict
	ExitNotFound        = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

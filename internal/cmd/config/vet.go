package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samvera-labs/workgen/internal/cmdtypes"
	"github.com/samvera-labs/workgen/internal/config"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the workgen configuration file",
		Long: `Validate the workgen configuration file.

Checks that tests is one of auto, rspec or none, that onConflict is one of
ask, force or skip, and that initializer is relative to the project root.
The file at ~/.workgen/config.yaml is validated by default. Use --config to
specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	path, err := configPath(cfg)
	if err != nil {
		return err
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return &cmdtypes.ExitError{
			Code: cmdtypes.ExitNotFound,
			Err:  fmt.Errorf("config file not found: %s", path),
		}
	}

	if err := config.ValidateFile(path); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			fmt.Fprintln(c.ErrOrStderr(), "Error: config validation failed")
			fmt.Fprintf(c.ErrOrStderr(), "  File: %s\n\n", path)
			for _, e := range validationErrs {
				fmt.Fprintf(c.ErrOrStderr(), "  %s: %s\n", e.Field, e.Message)
			}
			return &cmdtypes.ExitError{Code: cmdtypes.ExitValidationError, Err: err, Printed: true}
		}
		return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: fmt.Errorf("validating config: %w", err)}
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file is valid: %s\n", path)
	return nil
}

// Package config provides CLI command implementations for the config command group.
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samvera-labs/workgen/internal/cmdtypes"
	"github.com/samvera-labs/workgen/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for workgen.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// configPath returns the resolved config path, falling back to the default
// when the command runs without the root command.
func configPath(cfg *cmdtypes.GlobalConfig) (string, error) {
	if cfg != nil && cfg.ConfigPath != "" {
		return expand(cfg.ConfigPath)
	}
	p, err := config.GetConfigFile()
	if err != nil {
		return "", fmt.Errorf("getting config file path: %w", err)
	}
	return expand(p)
}

func expand(p string) (string, error) {
	expanded, err := config.ExpandPath(p)
	if err != nil {
		return "", fmt.Errorf("expanding config path: %w", err)
	}
	return expanded, nil
}

// Package cmd provides CLI command implementations.
package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	cmdconfig "github.com/samvera-labs/workgen/internal/cmd/config"
	"github.com/samvera-labs/workgen/internal/cmd/scaffold"
	"github.com/samvera-labs/workgen/internal/cmdtypes"
	"github.com/samvera-labs/workgen/internal/config"
	"github.com/samvera-labs/workgen/internal/output"
)

// NewRootCmd creates the root command for workgen.
func NewRootCmd() *cobra.Command {
	cfg := &cmdtypes.GlobalConfig{}

	var (
		configFlag     string
		timestampsFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "workgen",
		Short: "Hyrax work resource generator for Hyku",
		Long: `workgen scaffolds Valkyrie-based Hyrax work resources into a Hyku
application and removes them again.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			var timestamps *bool
			if c.Flags().Changed("timestamps") {
				timestamps = output.BoolPtr(timestampsFlag)
			}
			return initializeGlobals(cfg, configFlag, timestamps)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: WORKGEN_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(scaffold.NewGenerateCmd(cfg))
	rootCmd.AddCommand(scaffold.NewDestroyCmd(cfg))
	rootCmd.AddCommand(cmdconfig.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration into cfg and sets up logging.
func initializeGlobals(cfg *cmdtypes.GlobalConfig, configFlag string, timestamps *bool) error {
	pathResult, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return err
	}
	cfg.ConfigPath = pathResult.ConfigPath
	cfg.Timestamps = timestamps
	cfg.Loader = config.NewLoader()

	// Commands that don't need config, such as config init, still run.
	loaded, loadErr := cfg.Loader.Load(cfg.ConfigPath)
	if loaded == nil {
		loaded = &config.Config{}
	}
	cfg.Config = loaded

	// Resolve timestamps: flag > env > config > default.
	logCfg := output.LogConfig{Verbose: cfg.Verbose, Timestamps: loaded.Log.Timestamps}
	if ts, ok := cfg.Loader.Env("log.timestamps"); ok {
		if b, err := strconv.ParseBool(ts); err == nil {
			logCfg.Timestamps = &b
		}
	}
	if timestamps != nil {
		logCfg.Timestamps = timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Debug("config load error", "path", cfg.ConfigPath, "error", loadErr)
	}
	output.Debug("initializing CLI",
		"config", cfg.ConfigPath,
		"configSource", pathResult.Source,
	)
	for source, shadowed := range pathResult.Shadowed {
		output.Debug("  shadowed by higher precedence", "key", "config", "shadowed_source", source, "shadowed_value", shadowed)
	}

	return nil
}

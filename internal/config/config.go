// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Override with --timestamps.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the workgen configuration file.
type Config struct {
	// Root is the Hyku application directory.
	// Env: WORKGEN_ROOT, Default: "."
	Root string `mapstructure:"root" yaml:"root,omitempty"`

	// Initializer is the Hyrax initializer, relative to Root.
	// Env: WORKGEN_INITIALIZER, Default: config/initializers/hyrax.rb
	Initializer string `mapstructure:"initializer" yaml:"initializer,omitempty"`

	// Tests selects whether spec files are generated: auto, rspec or none.
	// Env: WORKGEN_TESTS, Default: auto
	Tests string `mapstructure:"tests" yaml:"tests,omitempty"`

	// OnConflict resolves existing files: ask, force or skip.
	// Env: WORKGEN_ON_CONFLICT, Default: ask
	OnConflict string `mapstructure:"onConflict" yaml:"onConflict,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// Built-in defaults.
const (
	DefaultRoot        = "."
	DefaultInitializer = "config/initializers/hyrax.rb"
	DefaultTests       = "auto"
	DefaultOnConflict  = "ask"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `workgen config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := false
	return &Config{
		Root:        DefaultRoot,
		Initializer: DefaultInitializer,
		Tests:       DefaultTests,
		OnConflict:  DefaultOnConflict,
		Log:         LogConfig{Timestamps: &timestamps},
	}
}

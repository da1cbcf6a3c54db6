package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samvera-labs/workgen/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records one setting and where it came from.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// Flags carries the command-line values. Empty strings and nil mean unset.
type Flags struct {
	Root        string
	Initializer string
	Tests       string
	OnConflict  string
	Timestamps  *bool
}

// Settings are the effective values for a run.
type Settings struct {
	Root        string
	Initializer string
	Tests       string
	OnConflict  string
	Timestamps  bool

	// Values explains each setting's resolution, in Keys order.
	Values []ResolvedValue
}

// Resolve applies precedence flag > env > config > default to every key.
func (l *Loader) Resolve(cfg *Config, flags Flags) (*Settings, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	defaults := DefaultConfig()

	s := &Settings{}
	add := func(v ResolvedValue) string {
		s.Values = append(s.Values, v)
		return v.Value
	}

	s.Root = add(l.resolve("root", flags.Root, cfg.Root, defaults.Root))
	s.Initializer = add(l.resolve("initializer", flags.Initializer, cfg.Initializer, defaults.Initializer))
	s.Tests = add(l.resolve("tests", flags.Tests, cfg.Tests, defaults.Tests))
	s.OnConflict = add(l.resolve("onConflict", flags.OnConflict, cfg.OnConflict, defaults.OnConflict))

	ts := add(l.resolve("log.timestamps", boolString(flags.Timestamps), boolString(cfg.Log.Timestamps), boolString(defaults.Log.Timestamps)))
	b, err := strconv.ParseBool(ts)
	if err != nil {
		return nil, &ValidationError{Field: "log.timestamps", Message: fmt.Sprintf("must be true or false, got %q", ts)}
	}
	s.Timestamps = b

	return s, nil
}

func (l *Loader) resolve(key, flagValue, configValue, defaultValue string) ResolvedValue {
	envValue, envSet := l.Env(key)

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, envValue},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}
	if !envSet {
		candidates[1].value = ""
	}

	result := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		if c.source != SourceDefault {
			result.Shadowed[c.source] = c.value
		}
	}
	return result
}

func boolString(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) WORKGEN_CONFIG env, (3) ~/.workgen/config.yaml.
func ResolveConfigPath(flagValue string) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case flagValue != "":
		result.ConfigPath = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}

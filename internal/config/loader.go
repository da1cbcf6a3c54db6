package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/spf13/viper"
)

// Environment variable prefix for workgen configuration.
const envPrefix = "WORKGEN"

// EnvConfig overrides the config file location.
const EnvConfig = envPrefix + "_CONFIG"

// Keys are the configuration keys in file order.
var Keys = []string{"root", "initializer", "tests", "onConflict", "log.timestamps"}

// EnvVar returns the environment variable overriding key,
// e.g. "onConflict" -> WORKGEN_ON_CONFLICT.
func EnvVar(key string) string {
	return envPrefix + "_" + strcase.ToScreamingSnake(strings.ReplaceAll(key, ".", "_"))
}

// Loader reads the config file and the WORKGEN_ environment.
// File and environment are kept apart so each value's source is known.
type Loader struct {
	file *viper.Viper
	env  *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	env := viper.New()
	env.SetEnvPrefix(envPrefix)
	for _, key := range Keys {
		_ = env.BindEnv(key, EnvVar(key))
	}

	return &Loader{file: viper.New(), env: env}
}

// Load loads configuration from the given file path.
// If configFile is empty, the default config file path is used.
// A missing file yields an empty Config.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.file.SetConfigFile(expandedPath)
	l.file.SetConfigType("yaml")

	if err := l.file.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.file.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Env returns the environment override for key, if set.
func (l *Loader) Env(key string) (string, bool) {
	if !l.env.IsSet(key) {
		return "", false
	}
	v := l.env.GetString(key)
	return v, v != ""
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// Package config provides configuration types and defaults for brigade.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/hammamikhairi/brigade/internal/logger"
)

// EnvPrefix is prepended to environment overrides, e.g. BRIGADE_LOG_LEVEL.
const EnvPrefix = "BRIGADE"

// Config holds all configuration options for brigade.
type Config struct {
	// Layout is the kitchen layout file. Empty means the built-in demo kitchen.
	Layout   string `mapstructure:"layout"`
	LogLevel string `mapstructure:"log_level"` // "off", "normal" (default) or "verbose"
	// LogFile receives log output; "stderr" or empty logs to the console.
	LogFile string `mapstructure:"log_file"`
	Color   bool   `mapstructure:"color"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		LogLevel: logger.LevelNormal.String(),
		LogFile:  "stderr",
		Color:    true,
	}
}

// Load builds a Config from defaults, an optional config file, and
// BRIGADE_* environment variables, in increasing priority. Flags bound to v
// by the caller take precedence over all of them. A missing file at an
// explicit path is an error; with no path, ./brigade.yaml is used if present.
func Load(v *viper.Viper, path string) (Config, error) {
	defaults := Defaults()
	v.SetDefault("layout", defaults.Layout)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("color", defaults.Color)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("brigade")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level returns the parsed log level.
func (c Config) Level() (logger.Level, error) {
	return logger.ParseLevel(c.LogLevel)
}

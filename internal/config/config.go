// Package config provides configuration management for ocbundle using Viper.
package config

import (
	"github.com/spf13/viper"

	"github.com/opencode-kit/ocbundle/internal/errors"
	"github.com/opencode-kit/ocbundle/internal/paths"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// OutputRoot is the default output root for generate when the
	// --output flag is not given. Empty means the current directory.
	OutputRoot string `mapstructure:"output_root" yaml:"output_root"`

	// Manifest is the default manifest path relative to the source
	// directory. Empty means auto-discovery.
	Manifest string `mapstructure:"manifest" yaml:"manifest"`

	// LogFormat is the default log format: text or json.
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ToolConfigDir())

	viper.SetEnvPrefix("OCBUNDLE")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("output_root", "")
	viper.SetDefault("manifest", "")
	viper.SetDefault("log_format", "text")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back
// to defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// An explicitly requested file must exist.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "", "text", "json":
		return nil
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "log_format %q (valid: text, json)", c.LogFormat)
	}
}

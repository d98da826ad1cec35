package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"procsig/internal/app/errors"
)

// ConfigFile is the name of the optional configuration file
const ConfigFile = "procsig.yaml"

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "PROCSIG"

// Config represents the library configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Format string `yaml:"format" mapstructure:"format"`
	} `yaml:"logging" mapstructure:"logging"`
	Stream struct {
		Buffer   int  `yaml:"buffer" mapstructure:"buffer"`
		Failfast bool `yaml:"failfast" mapstructure:"failfast"`
	} `yaml:"stream" mapstructure:"stream"`
	Process struct {
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	} `yaml:"process" mapstructure:"process"`
	Stats struct {
		Interval time.Duration `yaml:"interval" mapstructure:"interval"`
	} `yaml:"stats" mapstructure:"stats"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Stream.Buffer = DefaultStreamBuffer
	cfg.Stream.Failfast = DefaultFailfast

	cfg.Process.ShutdownTimeout = ShutdownTimeout

	cfg.Stats.Interval = DefaultStatsInterval

	return cfg
}

// Load loads the configuration from the optional config file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	v := newViper()

	data, err := os.ReadFile(ConfigFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.ErrFailedToReadConfig
		}
	} else if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Stream.Buffer <= 0 {
		return fmt.Errorf("stream buffer must be positive, got %d", c.Stream.Buffer)
	}

	if c.Process.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.Process.ShutdownTimeout)
	}

	if c.Stats.Interval <= 0 {
		return fmt.Errorf("stats interval must be positive, got %s", c.Stats.Interval)
	}

	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
	v.SetDefault("stream.buffer", DefaultStreamBuffer)
	v.SetDefault("stream.failfast", DefaultFailfast)
	v.SetDefault("process.shutdown_timeout", ShutdownTimeout)
	v.SetDefault("stats.interval", DefaultStatsInterval)

	return v
}

// Package config loads settings for the command-line tools from defaults,
// an optional YAML file and PERCOLATION_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/percolation/internal/logging"
	"github.com/katalvlaran/percolation/threshold"
)

// EnvPrefix prefixes every environment variable, e.g.
// PERCOLATION_SIMULATION_SEED for simulation.seed.
const EnvPrefix = "PERCOLATION"

// ErrInvalidConfig indicates a configuration value failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the complete configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// SimulationConfig controls the random experiments.
type SimulationConfig struct {
	// Seed is the base random seed. 0 asks the CLI to pick one from the clock.
	Seed int64 `mapstructure:"seed"`
	// Sampler is the site selection strategy: "rejection" or "shuffled".
	Sampler string `mapstructure:"sampler"`
}

// LoggingConfig controls diagnostic output on stderr.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default: warn)
	Level string `mapstructure:"level"`
	// Format is "json" or "text" (default: text)
	Format string `mapstructure:"format"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.sampler", threshold.Rejection.String())
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", logging.FormatText)
}

// Load reads configuration into a Config.
//
// When path is non-empty that file must exist and parse. Otherwise a
// percolation.yaml in the working directory is read if present. Environment
// variables override file values; flags bound to v override both.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	// Replace dots with underscores for nested keys in env vars
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("percolation")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if _, err := threshold.ParseSampler(c.Simulation.Sampler); err != nil {
		return fmt.Errorf("%w: simulation.sampler: %v", ErrInvalidConfig, err)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case logging.FormatJSON, logging.FormatText:
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}

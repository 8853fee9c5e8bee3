// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides: RESUME_FIT_DATABASE_URL,
// RESUME_FIT_SERVER_ADDR and so on.
const EnvPrefix = "RESUME_FIT"

// Config represents the configuration loaded from a JSON, YAML or TOML file
// and the environment. All fields are optional.
type Config struct {
	Candidate   string       `mapstructure:"candidate"`    // Default candidate profile path
	DatabaseURL string       `mapstructure:"database_url"` // postgres:// or sqlite:// run tracker URL
	Concurrency int          `mapstructure:"concurrency"`  // Parallel postings in batch runs
	Server      ServerConfig `mapstructure:"server"`
	Log         LogConfig    `mapstructure:"log"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	RateLimit       float64       `mapstructure:"rate_limit"` // Requests per second per client, 0 disables
	Burst           int           `mapstructure:"burst"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Concurrency: 4,
		Server: ServerConfig{
			Addr:            ":8080",
			RateLimit:       5,
			Burst:           10,
			MaxBodyBytes:    1 << 20,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// Load reads the configuration file at path (any format viper understands,
// chosen by extension) on top of the defaults, then applies RESUME_FIT_*
// environment overrides. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("candidate", d.Candidate)
	v.SetDefault("database_url", d.DatabaseURL)
	v.SetDefault("concurrency", d.Concurrency)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.rate_limit", d.Server.RateLimit)
	v.SetDefault("server.burst", d.Server.Burst)
	v.SetDefault("server.max_body_bytes", d.Server.MaxBodyBytes)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("log.debug", d.Log.Debug)
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	var errs []error

	if c.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("config error: 'concurrency' must be non-negative"))
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("config error: 'server.rate_limit' must be non-negative"))
	}
	if c.Server.Burst < 0 {
		errs = append(errs, fmt.Errorf("config error: 'server.burst' must be non-negative"))
	}
	if c.Server.MaxBodyBytes < 0 {
		errs = append(errs, fmt.Errorf("config error: 'server.max_body_bytes' must be non-negative"))
	}
	if c.DatabaseURL != "" && !hasSupportedScheme(c.DatabaseURL) {
		errs = append(errs, fmt.Errorf("config error: 'database_url' must start with postgres://, postgresql:// or sqlite://"))
	}
	if c.Candidate != "" {
		if _, err := os.Stat(c.Candidate); os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("config error: candidate file not found: %s", c.Candidate))
		}
	}

	return errors.Join(errs...)
}

func hasSupportedScheme(url string) bool {
	for _, prefix := range []string{"postgres://", "postgresql://", "sqlite://"} {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return false
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Booleans are not merged: unset and false cannot be told apart.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Candidate == "" {
		result.Candidate = defaults.Candidate
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.Server.Addr == "" {
		result.Server.Addr = defaults.Server.Addr
	}
	if result.Server.RateLimit == 0 {
		result.Server.RateLimit = defaults.Server.RateLimit
	}
	if result.Server.Burst == 0 {
		result.Server.Burst = defaults.Server.Burst
	}
	if result.Server.MaxBodyBytes == 0 {
		result.Server.MaxBodyBytes = defaults.Server.MaxBodyBytes
	}
	if result.Server.ShutdownTimeout == 0 {
		result.Server.ShutdownTimeout = defaults.Server.ShutdownTimeout
	}

	return result
}

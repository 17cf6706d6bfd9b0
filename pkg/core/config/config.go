package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	mdwerror "github.com/msto63/sro/foundation/core/error"
	"github.com/msto63/sro/foundation/utils/timex"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "SRO_"

// Config holds the complete application configuration
type Config struct {
	Server     ServerConfig     `toml:"server" envPrefix:"SERVER_"`
	Validation ValidationConfig `toml:"validation" envPrefix:"VALIDATION_"`
	Store      StoreConfig      `toml:"store" envPrefix:"STORE_"`
	Metrics    MetricsConfig    `toml:"metrics" envPrefix:"METRICS_"`
	Logging    LoggingConfig    `toml:"logging" envPrefix:"LOGGING_"`
}

// ServerConfig holds the gRPC listener settings
type ServerConfig struct {
	Host            string        `toml:"host" env:"HOST"`
	Port            int           `toml:"port" env:"PORT"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
	Reflection      bool          `toml:"reflection" env:"REFLECTION"`
}

// ValidationConfig holds batch validation settings
type ValidationConfig struct {
	// Concurrency limits the records validated in parallel
	Concurrency int `toml:"concurrency" env:"CONCURRENCY"`

	// Today fixes the reference date (YYYY-MM-DD) for reproducible runs.
	// Empty means the current local date.
	Today string `toml:"today" env:"TODAY"`

	// Timezone names the IANA zone the current date is taken in when Today
	// is empty, e.g. "America/Sao_Paulo". Empty means the local zone.
	Timezone string `toml:"timezone" env:"TIMEZONE"`
}

// StoreConfig holds the report store settings
type StoreConfig struct {
	Path      string        `toml:"path" env:"PATH"`
	Retention time.Duration `toml:"retention" env:"RETENTION"`
}

// MetricsConfig holds the Prometheus endpoint settings
type MetricsConfig struct {
	Enabled bool   `toml:"enabled" env:"ENABLED"`
	Host    string `toml:"host" env:"HOST"`
	Port    int    `toml:"port" env:"PORT"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file and applies environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	return load(path, nil)
}

// LoadFromEnv loads configuration from the file named by SRO_CONFIG or the
// first default location that exists. Without any file the defaults plus
// environment overrides are used.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvPrefix + "CONFIG")
	if path == "" {
		defaultPaths := []string{
			"./configs/sro.toml",
			"./sro.toml",
			filepath.Join(os.Getenv("HOME"), ".config/sro/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	return Load(path)
}

// load reads path, then environ (nil means the process environment)
func load(path string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	if path != "" {
		path = os.ExpandEnv(path)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, mdwerror.Newf("config file not found: %s", path).
				WithCode(mdwerror.CodeMissingConfig).
				WithOperation("config.Load")
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, mdwerror.Wrap(err, "failed to parse config").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, mdwerror.Wrap(err, "failed to apply environment overrides").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load")
	}

	cfg.Store.Path = os.ExpandEnv(cfg.Store.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// Server
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 9310
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}

	// Validation
	if c.Validation.Concurrency == 0 {
		c.Validation.Concurrency = 8
	}

	// Store
	if c.Store.Path == "" {
		c.Store.Path = "./data/reports.db"
	}
	if c.Store.Retention == 0 {
		c.Store.Retention = 30 * 24 * time.Hour
	}

	// Metrics
	if c.Metrics.Host == "" {
		c.Metrics.Host = "0.0.0.0"
	}
	if c.Metrics.Port == 0 {
		c.Metrics.Port = 9311
	}

	// Logging
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Validate rejects values no component can work with
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}, reason string) error {
		return mdwerror.Newf("invalid %s: %s", field, reason).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return invalid("server.port", c.Server.Port, "must be between 1 and 65535")
	}
	if c.Metrics.Enabled && (c.Metrics.Port < 1 || c.Metrics.Port > 65535) {
		return invalid("metrics.port", c.Metrics.Port, "must be between 1 and 65535")
	}
	if c.Metrics.Enabled && c.Metrics.Port == c.Server.Port && c.Metrics.Host == c.Server.Host {
		return invalid("metrics.port", c.Metrics.Port, "collides with server.port")
	}
	if c.Validation.Concurrency < 1 {
		return invalid("validation.concurrency", c.Validation.Concurrency, "must be at least 1")
	}
	if c.Validation.Today != "" {
		if _, err := timex.ParseDate(c.Validation.Today); err != nil {
			return invalid("validation.today", c.Validation.Today, "must be YYYY-MM-DD")
		}
	}
	if c.Validation.Timezone != "" {
		if _, err := timex.TodayIn(c.Validation.Timezone); err != nil {
			return invalid("validation.timezone", c.Validation.Timezone, "must be an IANA timezone name")
		}
	}
	if c.Store.Retention < 0 {
		return invalid("store.retention", c.Store.Retention, "must not be negative")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return invalid("logging.level", c.Logging.Level, "must be debug, info, warn or error")
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return invalid("logging.format", c.Logging.Format, "must be json or text")
	}
	return nil
}

// ReferenceDate returns the configured reference date, or the current
// date in the configured timezone when none is set.
func (c *Config) ReferenceDate() timex.Date {
	if c.Validation.Today != "" {
		if d, err := timex.ParseDate(c.Validation.Today); err == nil {
			return d
		}
	}
	if c.Validation.Timezone != "" {
		if d, err := timex.TodayIn(c.Validation.Timezone); err == nil {
			return d
		}
	}
	return timex.Today()
}

// ServerAddress returns the gRPC listen address
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// MetricsAddress returns the metrics listen address
func (c *Config) MetricsAddress() string {
	return fmt.Sprintf("%s:%d", c.Metrics.Host, c.Metrics.Port)
}

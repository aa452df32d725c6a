// Package config loads the optional YAML configuration. Every knob has a
// default, so the binary runs without a config file at all.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for a jobsift run.
type Config struct {
	Sources []SourceConfig
	HTTP    HTTPConfig
	Retry   RetryConfig
}

// SourceConfig toggles a single listing-service connector.
type SourceConfig struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
}

// HTTPConfig controls the shared network client.
type HTTPConfig struct {
	Timeout time.Duration // per-request timeout
}

// RetryConfig controls rate-limit backoff.
type RetryConfig struct {
	MaxRetries int           // additional attempts after the first failure
	BaseDelay  time.Duration // delay before the first retry, doubled each time
}

// knownSources are the connectors this build ships with, in merge order.
var knownSources = []string{"remotive", "arbeitnow"}

// Default returns the configuration used when no config file is given:
// all sources enabled, 20s request timeout, 3 retries starting at 2s.
func Default() *Config {
	cfg := &Config{
		HTTP:  HTTPConfig{Timeout: 20 * time.Second},
		Retry: RetryConfig{MaxRetries: 3, BaseDelay: 2 * time.Second},
	}
	for _, name := range knownSources {
		cfg.Sources = append(cfg.Sources, SourceConfig{Name: name, Enabled: true})
	}
	return cfg
}

// rawConfig is used for YAML unmarshaling (snake_case fields and durations
// as strings).
type rawConfig struct {
	Sources []SourceConfig `yaml:"sources"`
	HTTP    rawHTTPConfig  `yaml:"http"`
	Retry   rawRetryConfig `yaml:"retry"`
}

type rawHTTPConfig struct {
	Timeout string `yaml:"timeout"`
}

type rawRetryConfig struct {
	MaxRetries *int   `yaml:"max_retries"`
	BaseDelay  string `yaml:"base_delay"`
}

// Load reads and parses the YAML config file at path, fills in defaults,
// validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if len(raw.Sources) > 0 {
		cfg.Sources = raw.Sources
	}

	if raw.HTTP.Timeout != "" {
		cfg.HTTP.Timeout, err = time.ParseDuration(raw.HTTP.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse http.timeout %q: %w", raw.HTTP.Timeout, err)
		}
	}

	if raw.Retry.MaxRetries != nil {
		cfg.Retry.MaxRetries = *raw.Retry.MaxRetries
	}
	if raw.Retry.BaseDelay != "" {
		cfg.Retry.BaseDelay, err = time.ParseDuration(raw.Retry.BaseDelay)
		if err != nil {
			return nil, fmt.Errorf("parse retry.base_delay %q: %w", raw.Retry.BaseDelay, err)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	enabled := 0
	for _, s := range cfg.Sources {
		if !known(s.Name) {
			return fmt.Errorf("unknown source %q", s.Name)
		}
		if s.Enabled {
			enabled++
		}
	}
	if enabled == 0 {
		return fmt.Errorf("at least one source must be enabled")
	}

	if cfg.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive, got %v", cfg.HTTP.Timeout)
	}
	if cfg.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry.max_retries must not be negative, got %d", cfg.Retry.MaxRetries)
	}
	if cfg.Retry.BaseDelay <= 0 {
		return fmt.Errorf("retry.base_delay must be positive, got %v", cfg.Retry.BaseDelay)
	}
	return nil
}

func known(name string) bool {
	for _, k := range knownSources {
		if k == name {
			return true
		}
	}
	return false
}

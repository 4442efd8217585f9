// Package config loads ecoleta runtime settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"ecoleta/internal/ibge"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings for one ecoleta run.
type Config struct {
	IBGEBaseURL  string        `env:"ECOLETA_IBGE_BASE_URL"` // ibge.DefaultBaseURL when unset
	HTTPTimeout  time.Duration `env:"ECOLETA_HTTP_TIMEOUT" envDefault:"10s"`
	CachePath    string        `env:"ECOLETA_CACHE_PATH"`
	CacheTTL     time.Duration `env:"ECOLETA_CACHE_TTL" envDefault:"24h"`
	LogFile      string        `env:"ECOLETA_LOG_FILE"`
	OTLPEndpoint string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string        `env:"OTEL_SERVICE_NAME" envDefault:"ecoleta"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalizes and checks the loaded values.
func (c *Config) Validate() error {
	c.IBGEBaseURL = strings.TrimRight(strings.TrimSpace(c.IBGEBaseURL), "/")
	if c.IBGEBaseURL == "" {
		c.IBGEBaseURL = ibge.DefaultBaseURL
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("ECOLETA_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if c.CachePath != "" && c.CacheTTL <= 0 {
		return fmt.Errorf("ECOLETA_CACHE_TTL must be positive when a cache path is set, got %s", c.CacheTTL)
	}
	return nil
}

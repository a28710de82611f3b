package config

import (
	"fmt"

	pkgconfig "github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/config"
)

// Config holds all configuration for the rental marketplace service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"RENTAL_HTTP_PORT" envDefault:"8080"`

	// Optional JSON file with catalog listings. When empty the built-in
	// catalog is used.
	ListingsFile string `env:"LISTINGS_FILE" envDefault:""`

	// Currency code used for quotes and charges.
	Currency string `env:"CURRENCY" envDefault:"USD"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load rental marketplace config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if len(c.Currency) != 3 {
		return fmt.Errorf("invalid currency code: %q", c.Currency)
	}
	return nil
}

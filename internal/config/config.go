package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	// EnvOrdersDir is the environment variable holding the order store directory.
	EnvOrdersDir = "ACTIONS_ORDERS_DIR"
	// EnvLogLevel is the environment variable holding the log level.
	EnvLogLevel = "ACTIONS_LOG_LEVEL"
)

// Config holds the CLI configuration.
type Config struct {
	OrdersDir string `env:"ACTIONS_ORDERS_DIR" envDefault:".actions/orders"`
	LogLevel  string `env:"ACTIONS_LOG_LEVEL" envDefault:"warn"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

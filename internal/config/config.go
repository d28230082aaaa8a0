// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	env "github.com/Netflix/go-env"
)

// Config holds the server runtime configuration.
type Config struct {
	ListenAddress  string        `env:"LISTEN_ADDRESS,default=0.0.0.0:8080"`
	SQLitePath     string        `env:"SQLITE_PATH,default=floorplan.db"`
	JWTSecret      string        `env:"JWT_SECRET"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL,default=24h"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
}

// New reads the configuration from the environment.
func New() (*Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &cfg, nil
}

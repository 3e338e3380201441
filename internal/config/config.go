// Package config loads server configuration from the environment.
//
// Configuration comes from environment variables, parsed into a struct via
// `env:` tags. A local .env file is honoured when present (handy for
// development; harmless when missing in production).
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup.
type Config struct {
	// Port the HTTP server listens on.
	Port int `env:"PORT" envDefault:"8000"`

	// DBPath is the SQLite database file. Use ":memory:" for an
	// ephemeral database (tests do this).
	DBPath string `env:"DB_PATH" envDefault:"data/formbot.db"`

	// JWTSecret signs bearer tokens. Must be set — there is no safe
	// default for a signing key. Generate one with:
	//   JWT_SECRET=$(openssl rand -hex 32)
	JWTSecret string `env:"JWT_SECRET"`

	// CORSOrigins lists the frontend origins allowed to call the API
	// with credentials.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the optional .env file and parses the environment.
func Load() (Config, error) {
	// Load .env if present. Missing file is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET must be set")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Port)
	}
	return nil
}

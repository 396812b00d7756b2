// Package config loads application configuration from environment variables.
// A .env file in the working directory is read first when present; variables
// already set in the process environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/iliyamo/fyyur/internal/database"
)

// Config holds all runtime configuration values.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"dev"`
	Port string `env:"APP_PORT" envDefault:"5000"`

	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBUser   string `env:"DB_USER"`
	DBPass   string `env:"DB_PASS"`
	DBHost   string `env:"DB_HOST" envDefault:"localhost"`
	DBPort   string `env:"DB_PORT"` // defaults to the driver's standard port
	DBName   string `env:"DB_NAME" envDefault:"fyyur"`
	DBSSL    string `env:"DB_SSLMODE" envDefault:"disable"`
	DBPath   string `env:"DB_PATH" envDefault:"fyyur.db"`
	DBSeed   bool   `env:"DB_SEED" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"` // text in dev, json elsewhere

	// RabbitMQURL enables domain events when non-empty.
	RabbitMQURL string `env:"RABBITMQ_URL"`

	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"false"`

	Redis     RedisConfig
	RateLimit RateLimitConfig
}

// Load reads .env (if any) and parses the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds a Config from the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.RateLimit.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.DBPort == "" {
		d, _ := database.ParseDialect(cfg.DBDriver)
		cfg.DBPort = d.DefaultPort()
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
		if cfg.IsDev() {
			cfg.LogFormat = "text"
		}
	}
	return cfg, nil
}

// Validate checks the database settings for the selected driver.
func (c Config) Validate() error {
	d, err := database.ParseDialect(c.DBDriver)
	if err != nil {
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if d == database.SQLite {
		if c.DBPath == "" {
			return errors.New("DB_PATH is required for sqlite")
		}
		return nil
	}
	var missing []string
	if c.DBUser == "" {
		missing = append(missing, "DB_USER")
	}
	if c.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}
	if c.DBName == "" {
		missing = append(missing, "DB_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required env vars for %s: %s", c.DBDriver, strings.Join(missing, ", "))
	}
	return nil
}

// IsDev reports whether the app runs in development mode.
func (c Config) IsDev() bool {
	return c.Env == "" || c.Env == "dev" || c.Env == "development"
}

// Package config loads the process configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all process-wide settings, read once at startup and
// read-only afterwards.
type Config struct {
	// Port is the HTTP listen port.
	Port string `env:"PORT" envDefault:"8080"`

	// SecretKey signs session tokens. It has no fallback: a missing key is
	// a startup failure, not a silently weak default.
	SecretKey string `env:"SECRET_KEY,required,notEmpty"`

	// TokenTTL is the session token lifetime.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// CacheTTL is how long directory listing results stay cached.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"profile_app"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// RedisHost is optional; when empty the service runs without a cache.
	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RunMigrations controls whether the schema is migrated on startup.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"true"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// DSN builds the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// RedisAddr returns the Redis address, or "" when Redis is not configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

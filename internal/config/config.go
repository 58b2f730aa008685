// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrInvalidConfig wraps every configuration error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the server settings.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int

	// LogLevel is passed to the logging package (debug, info, warn, error).
	LogLevel string

	// JWTSecret signs bearer tokens. Empty disables authentication.
	JWTSecret string

	// TokenTTL is how long issued tokens stay valid.
	TokenTTL time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// AuthEnabled reports whether RPCs require a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// Load reads the configuration through getenv, applying defaults for unset keys.
func Load(getenv func(string) string) (*Config, error) {
	env := func(key, fallback string) string {
		if value := getenv(key); value != "" {
			return value
		}
		return fallback
	}

	port, err := strconv.Atoi(env("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("%w: PORT must be 1-65535, got %q", ErrInvalidConfig, getenv("PORT"))
	}

	tokenTTL, err := time.ParseDuration(env("TOKEN_TTL", "24h"))
	if err != nil || tokenTTL <= 0 {
		return nil, fmt.Errorf("%w: TOKEN_TTL must be a positive duration, got %q", ErrInvalidConfig, getenv("TOKEN_TTL"))
	}

	shutdownTimeout, err := time.ParseDuration(env("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil || shutdownTimeout <= 0 {
		return nil, fmt.Errorf("%w: SHUTDOWN_TIMEOUT must be a positive duration, got %q", ErrInvalidConfig, getenv("SHUTDOWN_TIMEOUT"))
	}

	return &Config{
		Port:            port,
		LogLevel:        env("LOG_LEVEL", "info"),
		JWTSecret:       getenv("JWT_SECRET"),
		TokenTTL:        tokenTTL,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

// FromEnv loads the configuration from the process environment.
func FromEnv() (*Config, error) {
	return Load(os.Getenv)
}

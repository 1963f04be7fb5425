// Package config resolves service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultPort   = "8080"
	defaultAppEnv = "development"
)

// Config holds the runtime settings the service reads from its environment.
// Everything else in .env (REGISTRY, IMAGE, TAG, CONTAINER_NAME) belongs to
// the build tooling and is ignored here.
type Config struct {
	// Port is the TCP port the HTTP server binds on all interfaces.
	Port string
	// AppEnv selects logger output format ("development" or "production").
	AppEnv string
}

// Load reads an optional .env file and then the process environment.
// A missing .env file is not an error; explicit environment variables
// take precedence over .env values.
func Load() (Config, error) {
	// godotenv.Load never overwrites variables already set in the
	// environment, which gives the precedence we want.
	_ = godotenv.Load()

	cfg := Config{
		Port:   getenvDefault("PORT", defaultPort),
		AppEnv: getenvDefault("APP_ENV", defaultAppEnv),
	}
	if err := validatePort(cfg.Port); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr returns the listen address for http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid PORT %q: %w", port, err)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("invalid PORT %q: out of range 1-65535", port)
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

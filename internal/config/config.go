// Package config reads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the settings shared by all commands.
type Config struct {
	// DatabaseURL is either a postgres:// DSN or a sqlite path.
	DatabaseURL string
	// Port is the HTTP listen port for the serve command.
	Port int
}

// Load builds a Config from environment variables, falling back to a
// local sqlite file and port 8080.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL: "blog.db",
		Port:        8080,
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	return cfg, nil
}

// Package config loads editor settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is everything the editor binary needs at startup.
type Config struct {
	// DBPath is the sqlite file; empty selects the in-memory store.
	DBPath string
	// Session is the external quote/session id; empty means local-only
	// unsaved mode.
	Session string

	// Footprint dimensions in feet.
	Width  float64
	Length float64

	LogLevel string
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		DBPath:   os.Getenv("PLANSKETCH_DB"),
		Session:  os.Getenv("PLANSKETCH_SESSION"),
		Width:    40,
		Length:   60,
		LogLevel: envDefault("PLANSKETCH_LOG_LEVEL", "info"),
	}

	var err error
	if cfg.Width, err = envFloat("PLANSKETCH_WIDTH", cfg.Width); err != nil {
		return nil, err
	}
	if cfg.Length, err = envFloat("PLANSKETCH_LENGTH", cfg.Length); err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Length <= 0 {
		return nil, fmt.Errorf("footprint must be positive, got %gx%g", cfg.Width, cfg.Length)
	}
	return cfg, nil
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, v, err)
	}
	return f, nil
}

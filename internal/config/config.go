package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime settings for the Pulse backend.
type Config struct {
	DBPath        string
	Port          string
	SecretKey     string
	TokenValidity time.Duration
}

// Load builds a Config from environment variables, falling back to
// development defaults.
func Load() *Config {
	cfg := &Config{
		DBPath:        "./pulse.db",
		Port:          "8080",
		SecretKey:     "dev-secret-change-me",
		TokenValidity: time.Hour,
	}

	if v := os.Getenv("PULSE_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PULSE_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("PULSE_SECRET"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("PULSE_TOKEN_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			cfg.TokenValidity = time.Duration(minutes) * time.Minute
		}
	}

	return cfg
}

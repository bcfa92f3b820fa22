package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, "./pulse.db", cfg.DBPath)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, time.Hour, cfg.TokenValidity)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PULSE_DB_PATH", "/data/pulse.db")
	t.Setenv("PULSE_PORT", "9090")
	t.Setenv("PULSE_SECRET", "prod-secret")
	t.Setenv("PULSE_TOKEN_TTL_MINUTES", "30")

	cfg := Load()
	require.Equal(t, "/data/pulse.db", cfg.DBPath)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "prod-secret", cfg.SecretKey)
	require.Equal(t, 30*time.Minute, cfg.TokenValidity)
}

func TestLoad_InvalidTTLIgnored(t *testing.T) {
	t.Setenv("PULSE_TOKEN_TTL_MINUTES", "not-a-number")

	cfg := Load()
	require.Equal(t, time.Hour, cfg.TokenValidity)
}

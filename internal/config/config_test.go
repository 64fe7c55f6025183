package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("JWT_EXPIRY", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 24h", cfg.JWTExpiry)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90m")
	if got := getEnvDuration("TEST_DURATION", time.Hour); got != 90*time.Minute {
		t.Errorf("getEnvDuration = %v, want 90m", got)
	}

	t.Setenv("TEST_DURATION", "not-a-duration")
	if got := getEnvDuration("TEST_DURATION", time.Hour); got != time.Hour {
		t.Errorf("getEnvDuration with invalid value = %v, want fallback 1h", got)
	}

	if got := getEnvDuration("TEST_DURATION_UNSET", time.Hour); got != time.Hour {
		t.Errorf("getEnvDuration unset = %v, want fallback 1h", got)
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, 5*time.Second, cfg.ValidationTimeout)
	assert.Empty(t, cfg.ValidationURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("VALIDATION_URL", "http://validator:7000/validate")
	t.Setenv("VALIDATION_TIMEOUT_MS", "2500")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://validator:7000/validate", cfg.ValidationURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.ValidationTimeout)
}

func TestLoadIgnoresBadTimeout(t *testing.T) {
	t.Setenv("VALIDATION_TIMEOUT_MS", "not-a-number")

	cfg := Load()
	assert.Equal(t, 5*time.Second, cfg.ValidationTimeout)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE_BACKEND", "DATA_DIR", "JWT_SECRET", "READ_TIMEOUT"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, BackendFile, cfg.StorageBackend)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, 15, cfg.ReadTimeout)
	assert.Equal(t, 60, cfg.IdleTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_BACKEND", BackendPostgres)
	t.Setenv("READ_TIMEOUT", "30")
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendPostgres, cfg.StorageBackend)
	assert.Equal(t, 30, cfg.ReadTimeout)
}

func TestLoadBadInteger(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "bozuk")
	cfg := Load()
	assert.Equal(t, 15, cfg.ReadTimeout)
}

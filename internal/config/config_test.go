package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	cfg := Load()

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.ListenAddr)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Positive(t, cfg.ImportWorkers)
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("DB_PATH", "/custom/db.sqlite")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test123")
	t.Setenv("IMPORT_WORKERS", "4")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "/custom/db.sqlite", cfg.DBPath)
	assert.Equal(t, "sk-test123", cfg.AnthropicAPIKey)
	assert.Equal(t, 4, cfg.ImportWorkers)
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("IMPORT_WORKERS", "veel")
	assert.Equal(t, 2, Load().ImportWorkers)
}

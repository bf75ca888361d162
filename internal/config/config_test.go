package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FACTORYFLOW_DATA_DIR", "")
	t.Setenv("FACTORYFLOW_ADDR", "")
	t.Setenv("FACTORYFLOW_LOG_LEVEL", "")

	cfg := Load("")

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, ":3001", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FACTORYFLOW_DATA_DIR", "/srv/factory")
	t.Setenv("FACTORYFLOW_ADDR", ":8080")
	t.Setenv("FACTORYFLOW_LOG_LEVEL", "debug")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")

	cfg := Load("")

	assert.Equal(t, "/srv/factory", cfg.DataDir)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
}

func TestLoadEnvFile(t *testing.T) {
	// godotenv only fills variables that are absent, so make sure this one
	// is truly unset while still restoring it afterwards
	t.Setenv("FACTORYFLOW_DATA_DIR", "placeholder")
	require.NoError(t, os.Unsetenv("FACTORYFLOW_DATA_DIR"))

	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("FACTORYFLOW_DATA_DIR=/from/env/file\n"), 0o644))

	cfg := Load(envFile)
	assert.Equal(t, "/from/env/file", cfg.DataDir)
}

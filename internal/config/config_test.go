package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileAbsent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GRIND_API_URL", "")
	t.Setenv("GRIND_SESSION", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.False(t, cfg.Calendar.Sync)
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GRIND_API_URL", "")
	t.Setenv("GRIND_SESSION", "")

	dir := filepath.Join(home, ".grind")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := `api:
  base_url: https://dash.example.edu/api
  session: abc123
calendar:
  sync: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://dash.example.edu/api", cfg.API.BaseURL)
	assert.Equal(t, "abc123", cfg.API.Session)
	assert.True(t, cfg.Calendar.Sync)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GRIND_API_URL", "https://other.example.edu/api")
	t.Setenv("GRIND_SESSION", "env-session")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://other.example.edu/api", cfg.API.BaseURL)
	assert.Equal(t, "env-session", cfg.API.Session)
}

func TestWriteDefault_ProducesLoadableConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GRIND_API_URL", "")
	t.Setenv("GRIND_SESSION", "")

	path := filepath.Join(home, ".grind", "config.yaml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.True(t, cfg.Cache.Enabled)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
server:
  port: 9000
  readTimeout: 5s
database:
  url: postgres://localhost:5432/lastmile
redis:
  enabled: true
  addr: localhost:6379
  trackTTL: 30m
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "postgres://localhost:5432/lastmile", cfg.Database.URL)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Minute, cfg.Redis.TrackTTL)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Unset fields pick up defaults.
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "data/models/duration_model.json", cfg.Model.ArtifactPath)
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
  "database": {"url": "postgres://localhost:5432/lastmile"}
}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
server:
  port: 9000
database:
  url: postgres://localhost:5432/lastmile
`)

	t.Setenv("LM_SERVER__PORT", "9090")
	t.Setenv("LM_LOGGING__LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsMissingDatabaseURL(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
server:
  port: 9000
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.url")
}

func TestLoadRejectsRedisWithoutAddr(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
database:
  url: postgres://localhost:5432/lastmile
redis:
  enabled: true
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis.addr")
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeConfig(t, "config.toml", `x = 1`)
	_, err := Load(path)
	require.Error(t, err)
}

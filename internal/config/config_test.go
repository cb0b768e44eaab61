package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "0 5 0 * * *", cfg.Streak.SweepCron)
	assert.Equal(t, 2*time.Second, cfg.Toast.Duration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Database.SQLitePath, "journal is off unless configured")
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, `
streak:
  sweep_cron: "0 0 1 * * *"
toast:
  duration: 3s
database:
  sqlite_path: data/hub.db
metrics:
  addr: ":9108"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0 0 1 * * *", cfg.Streak.SweepCron)
	assert.Equal(t, 3*time.Second, cfg.Toast.Duration)
	assert.Equal(t, "data/hub.db", cfg.Database.SQLitePath)
	assert.Equal(t, ":9108", cfg.Metrics.Addr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "database:\n  sqlite_path: from-file.db\n")
	t.Setenv("HUB_SQLITE_PATH", "from-env.db")
	t.Setenv("HUB_TOAST_DURATION", "500ms")
	t.Setenv("HUB_AVATAR_API_KEY", "k-123")
	t.Setenv("HUB_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Database.SQLitePath)
	assert.Equal(t, 500*time.Millisecond, cfg.Toast.Duration)
	assert.Equal(t, "k-123", cfg.Avatar.APIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "streak: [oops"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	cfg.Streak.SweepCron = "every day"
	assert.Error(t, cfg.Validate())

	cfg.Streak.SweepCron = "@daily"
	assert.NoError(t, cfg.Validate())

	cfg.Toast.Duration = -time.Second
	assert.Error(t, cfg.Validate())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
db_creds:
  host: localhost
  port: "5432"
  username: postgres
  password: secret
  database: addresses
server:
  port: 9090
batch:
  workers: 4
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DBCreds.Host)
	assert.Equal(t, "addresses", cfg.DBCreds.Database)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
	assert.NoError(t, cfg.ValidateDB())
	assert.True(t, cfg.HasDB())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/addr")
	t.Setenv("PORT", "7000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/addr", cfg.DBCreds.URL)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.NoError(t, cfg.ValidateDB())
}

func TestLoadConfig_BadPort(t *testing.T) {
	t.Setenv("PORT", "eighty")

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Batch.Workers = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Log.Level = "chatty"
	assert.Error(t, cfg.Validate())
}

func TestValidateDB_RequiresHostOrURL(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.HasDB())
	assert.Error(t, cfg.ValidateDB())
}

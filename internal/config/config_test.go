package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "1", cfg.Server.APIVersion)
	assert.Equal(t, 3*time.Second, cfg.Database.LockTimeout)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 15*time.Second, cfg.Worker.PoolStatsInterval)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=from_file\nDB_LOCK_TIMEOUT=750ms\n"), 0o600))
	t.Setenv("DB_NAME", "from_env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from_env", cfg.Database.Name)
	assert.Equal(t, 750*time.Millisecond, cfg.Database.LockTimeout)

	// godotenv.Load writes into the process environment
	t.Cleanup(func() { os.Unsetenv("DB_LOCK_TIMEOUT") })
}

func TestLoad_RejectsNonPositiveLockTimeout(t *testing.T) {
	t.Setenv("DB_LOCK_TIMEOUT", "0s")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_LOCK_TIMEOUT")
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

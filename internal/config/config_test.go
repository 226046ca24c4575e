package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("OWNER_ID", "42")
	t.Setenv("OPS_TOKEN", "ops-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(42), cfg.OwnerID)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "data/mood.db", cfg.SQLitePath)
	assert.Equal(t, "charts", cfg.ChartsDir)
	assert.Equal(t, "0 19 * * 0", cfg.WeeklyCron)
	assert.Equal(t, "0 19 28-31 * *", cfg.MonthlyCron)
	assert.Equal(t, "ops-secret", cfg.OpsToken)
}

func TestLoadRequiresOpsToken(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OPS_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresOwnerID(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("OWNER_ID", "")
	t.Setenv("OPS_TOKEN", "ops-secret")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("OWNER_ID", "42")
	t.Setenv("OPS_TOKEN", "ops-secret")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadPostgresNeedsDSN(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("POSTGRES_DSN", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("POSTGRES_DSN", "postgres://localhost/mood")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Backend)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STORAGE_BACKEND", "redis")

	_, err := Load()
	assert.Error(t, err)
}

func TestLocation(t *testing.T) {
	setRequiredEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Yekaterinburg", loc.String())
}

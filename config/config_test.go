package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "/data", cfg.VolumePath)
	assert.Equal(t, "python", cfg.Python)
	assert.Equal(t, "manage.py", cfg.ManagePath)
	assert.Equal(t, "staticfiles", cfg.StaticRoot)
	assert.Equal(t, "locale", cfg.LocaleDir)
	assert.Equal(t, "gunicorn", cfg.ServerBin)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("VOLUME_PATH", "/mnt/persist")
	t.Setenv("DATABASE_URL", "postgres://db/app")
	t.Setenv("METRICS_ADDR", ":9090")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9001, cfg.Port)
	assert.Equal(t, "/mnt/persist", cfg.VolumePath)
	assert.Equal(t, "postgres://db/app", cfg.DatabaseURL)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestLoad_RejectsNonNumericPort(t *testing.T) {
	t.Setenv("PORT", "eighty")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_RejectsOutOfRangePort(t *testing.T) {
	t.Setenv("PORT", "70000")

	_, err := Load()

	assert.Error(t, err)
}

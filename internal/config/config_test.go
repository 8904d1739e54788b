package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArmaRealms/ToolStats/internal/domain"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT", "SERVICE_NAME", "VERSION",
		"TOOLSTATS_CONFIG", "METRICS_ADDR", "TICK_INTERVAL",
		"TRACKED_DEATH_CAPACITY", "TRACKED_DEATH_TTL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	// run from an empty directory so no stray .env is picked up
	t.Chdir(t.TempDir())
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "config.yml", cfg.ToolStatsPath)
		assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
		assert.Equal(t, 4096, cfg.TrackedDeathCapacity)
		assert.Equal(t, 5*time.Minute, cfg.TrackedDeathTTL)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("TOOLSTATS_CONFIG", "/etc/toolstats/config.yml")
		t.Setenv("METRICS_ADDR", ":9090")
		t.Setenv("TICK_INTERVAL", "100ms")
		t.Setenv("TRACKED_DEATH_CAPACITY", "16")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "/etc/toolstats/config.yml", cfg.ToolStatsPath)
		assert.Equal(t, ":9090", cfg.MetricsAddr)
		assert.Equal(t, 100*time.Millisecond, cfg.TickInterval)
		assert.Equal(t, 16, cfg.TrackedDeathCapacity)
	})

	t.Run("rejects unparsable values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("TICK_INTERVAL", "soon")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("LOG_FORMAT", "xml")
		t.Setenv("TRACKED_DEATH_CAPACITY", "0")

		_, err := Load()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "LogFormat")
		assert.Contains(t, err.Error(), "TrackedDeathCapacity")
	})
}

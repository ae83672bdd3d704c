package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PARCELSORT_ADDR", "")
		t.Setenv("SHUTDOWN_TIMEOUT", "")
		t.Setenv("METRICS_ENABLED", "")

		cfg := FromEnv()
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
		assert.True(t, cfg.MetricsEnabled)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PARCELSORT_ADDR", ":9090")
		t.Setenv("SHUTDOWN_TIMEOUT", "3s")
		t.Setenv("METRICS_ENABLED", "false")
		t.Setenv("LOG_LEVEL", "debug")

		cfg := FromEnv()
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
		assert.False(t, cfg.MetricsEnabled)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("ignores malformed duration", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")
		assert.Equal(t, 10*time.Second, FromEnv().ShutdownTimeout)
	})
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollerConfig_Validate(t *testing.T) {
	t.Run("all fields set", func(t *testing.T) {
		cfg := &PollerConfig{
			SyncInterval:     5 * time.Minute,
			HealthStaleAfter: 20 * time.Minute,
		}
		err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, cfg.SyncInterval)
		assert.Equal(t, 20*time.Minute, cfg.HealthStaleAfter)
	})

	t.Run("sync interval not set - should use default", func(t *testing.T) {
		cfg := &PollerConfig{
			SyncInterval:     0, // not set
			HealthStaleAfter: time.Hour,
		}
		err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, defaultSyncPollingInterval, cfg.SyncInterval)
		assert.Equal(t, 10*time.Minute, cfg.SyncInterval)
	})

	t.Run("negative values - should use defaults", func(t *testing.T) {
		cfg := &PollerConfig{
			SyncInterval:     -1 * time.Minute,
			HealthStaleAfter: -1 * time.Minute,
		}
		err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, defaultSyncPollingInterval, cfg.SyncInterval)
		assert.Equal(t, defaultHealthStaleAfter, cfg.HealthStaleAfter)
	})

	t.Run("stale window shorter than interval - should error", func(t *testing.T) {
		cfg := &PollerConfig{
			SyncInterval:     10 * time.Minute,
			HealthStaleAfter: time.Minute,
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "health-stale-after must not be shorter than sync-interval")
	})
}

package config

import (
	"errors"
	"time"
)

const (
	defaultSyncPollingInterval = 10 * time.Minute
	defaultHealthStaleAfter    = 30 * time.Minute
)

type PollerConfig struct {
	SyncInterval time.Duration `mapstructure:"sync-interval"`
	// HealthStaleAfter is how long a tracker may go without a successful cycle before /health fails
	HealthStaleAfter time.Duration `mapstructure:"health-stale-after"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.SyncInterval <= 0 {
		cfg.SyncInterval = defaultSyncPollingInterval
	}

	if cfg.HealthStaleAfter <= 0 {
		cfg.HealthStaleAfter = defaultHealthStaleAfter
	}

	if cfg.HealthStaleAfter < cfg.SyncInterval {
		return errors.New("health-stale-after must not be shorter than sync-interval")
	}

	return nil
}

package config

import (
	"fmt"
	"time"
)

const (
	defaultMaxEntries        = 25
	defaultEmbedColor        = 0x5865F2
	defaultOpenRetryTimes    = 3
	defaultOpenRetryInterval = 5 * time.Second
)

type DiscordConfig struct {
	Token string `mapstructure:"token"`
	// MaxEntries caps the number of rendered rows, the fingerprint still covers all of them
	MaxEntries        int           `mapstructure:"max-entries"`
	Color             int           `mapstructure:"color"`
	OpenRetryTimes    uint          `mapstructure:"open-retry-times"`
	OpenRetryInterval time.Duration `mapstructure:"open-retry-interval"`
}

func (cfg *DiscordConfig) Validate() error {
	if cfg.Token == "" {
		return fmt.Errorf("discord token is required")
	}
	if cfg.MaxEntries <= 0 {
		return fmt.Errorf("discord max entries should be positive")
	}
	if cfg.OpenRetryTimes == 0 {
		return fmt.Errorf("discord open retry times should be positive")
	}

	return nil
}

package config

import (
	"fmt"
	"time"
)

const (
	defaultProviderBaseURL   = "https://minecraft-mp.com"
	defaultProviderTimeout   = 15 * time.Second
	defaultRequestsPerSecond = 2.0
	defaultBurst             = 2
)

// ProviderConfig describes the vote site the standings are read from
type ProviderConfig struct {
	BaseURL           string        `mapstructure:"base-url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests-per-second"`
	Burst             int           `mapstructure:"burst"`
}

func (cfg *ProviderConfig) Validate() error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("provider base url is required")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("provider timeout should be positive")
	}
	if cfg.RequestsPerSecond <= 0 {
		return fmt.Errorf("provider requests per second should be positive")
	}
	if cfg.Burst <= 0 {
		return fmt.Errorf("provider burst should be positive")
	}

	return nil
}

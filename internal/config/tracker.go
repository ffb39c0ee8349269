package config

import "fmt"

// TrackerConfig binds one tracked server on the vote site to a Discord channel
type TrackerConfig struct {
	// ID identifies the tracked entity and keys its persisted sync state
	ID          string `mapstructure:"id"`
	ChannelID   string `mapstructure:"channel-id"`
	ProviderKey string `mapstructure:"provider-key"`
	// Period pins the reporting window, the current month is used when empty
	Period string `mapstructure:"period"`
}

func (cfg *TrackerConfig) Validate() error {
	if cfg.ID == "" {
		return fmt.Errorf("tracker id is required")
	}
	if cfg.ChannelID == "" {
		return fmt.Errorf("tracker channel id is required")
	}
	if cfg.ProviderKey == "" {
		return fmt.Errorf("tracker provider key is required")
	}

	return nil
}

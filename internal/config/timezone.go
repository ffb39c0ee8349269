package config

import (
	"fmt"
	"time"
)

const (
	defaultSourceOffset               = -5 * time.Hour
	defaultSourceLabel                = "EST"
	defaultTargetOffset time.Duration = 0
	defaultTargetLabel                = "UTC"

	maxOffset = 14 * time.Hour
)

// TimezoneConfig holds the two fixed offsets used to render last-activity times.
// Neither offset follows daylight saving.
type TimezoneConfig struct {
	SourceOffset time.Duration `mapstructure:"source-offset"`
	SourceLabel  string        `mapstructure:"source-label"`
	TargetOffset time.Duration `mapstructure:"target-offset"`
	TargetLabel  string        `mapstructure:"target-label"`
}

func (cfg *TimezoneConfig) Validate() error {
	if cfg.SourceOffset < -maxOffset || cfg.SourceOffset > maxOffset {
		return fmt.Errorf("timezone source offset %s is out of range", cfg.SourceOffset)
	}
	if cfg.TargetOffset < -maxOffset || cfg.TargetOffset > maxOffset {
		return fmt.Errorf("timezone target offset %s is out of range", cfg.TargetOffset)
	}
	if cfg.TargetLabel == "" {
		return fmt.Errorf("timezone target label is required")
	}

	return nil
}

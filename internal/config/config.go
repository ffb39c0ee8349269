package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "LBSYNC"

type Config struct {
	Db       DbConfig        `mapstructure:"db"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Provider ProviderConfig  `mapstructure:"provider"`
	Discord  DiscordConfig   `mapstructure:"discord"`
	Poller   PollerConfig    `mapstructure:"poller"`
	Timezone TimezoneConfig  `mapstructure:"timezone"`
	Trackers []TrackerConfig `mapstructure:"trackers"`
	Metrics  MetricsConfig   `mapstructure:"metrics"`
	// Queue is optional, leaderboard updates are not broadcast when it is absent
	Queue *QueueConfig `mapstructure:"queue"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Db.Validate(); err != nil {
		return err
	}

	if cfg.Db.Driver == DriverPostgres {
		if cfg.Postgres == nil {
			return fmt.Errorf("postgres config is required when db driver is %q", DriverPostgres)
		}
		if err := cfg.Postgres.Validate(); err != nil {
			return err
		}
	}

	if err := cfg.Provider.Validate(); err != nil {
		return err
	}

	if err := cfg.Discord.Validate(); err != nil {
		return err
	}

	if err := cfg.Poller.Validate(); err != nil {
		return err
	}

	if err := cfg.Timezone.Validate(); err != nil {
		return err
	}

	if len(cfg.Trackers) == 0 {
		return fmt.Errorf("at least one tracker must be configured")
	}
	seen := make(map[string]struct{}, len(cfg.Trackers))
	for i := range cfg.Trackers {
		tracker := &cfg.Trackers[i]
		if err := tracker.Validate(); err != nil {
			return fmt.Errorf("tracker %d: %w", i, err)
		}
		if _, ok := seen[tracker.ID]; ok {
			return fmt.Errorf("tracker %q is configured more than once", tracker.ID)
		}
		seen[tracker.ID] = struct{}{}
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}

	if cfg.Queue != nil {
		if err := cfg.Queue.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Tracker looks up a configured tracker by its id
func (cfg *Config) Tracker(id string) (TrackerConfig, bool) {
	for _, tracker := range cfg.Trackers {
		if tracker.ID == id {
			return tracker, true
		}
	}
	return TrackerConfig{}, false
}

// New loads the yaml config file at cfgFile. Any key can be overridden through
// environment variables prefixed with LBSYNC_, e.g. LBSYNC_DISCORD_TOKEN.
func New(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.driver", DriverMongo)
	v.SetDefault("db.username", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.address", "")
	v.SetDefault("db.db-name", defaultDbName)
	v.SetDefault("db.max-pool-size", defaultMaxPoolSize)
	v.SetDefault("db.connect-retry-times", defaultConnectRetryTimes)
	v.SetDefault("db.connect-retry-interval", defaultConnectRetryInterval)

	v.SetDefault("provider.base-url", defaultProviderBaseURL)
	v.SetDefault("provider.timeout", defaultProviderTimeout)
	v.SetDefault("provider.requests-per-second", defaultRequestsPerSecond)
	v.SetDefault("provider.burst", defaultBurst)

	v.SetDefault("discord.token", "")
	v.SetDefault("discord.max-entries", defaultMaxEntries)
	v.SetDefault("discord.color", defaultEmbedColor)
	v.SetDefault("discord.open-retry-times", defaultOpenRetryTimes)
	v.SetDefault("discord.open-retry-interval", defaultOpenRetryInterval)

	v.SetDefault("poller.sync-interval", defaultSyncPollingInterval)
	v.SetDefault("poller.health-stale-after", defaultHealthStaleAfter)

	v.SetDefault("timezone.source-offset", defaultSourceOffset)
	v.SetDefault("timezone.source-label", defaultSourceLabel)
	v.SetDefault("timezone.target-offset", defaultTargetOffset)
	v.SetDefault("timezone.target-label", defaultTargetLabel)

	v.SetDefault("metrics.host", defaultMetricsHost)
	v.SetDefault("metrics.port", defaultMetricsPort)
}

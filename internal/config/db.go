package config

import (
	"fmt"
	"time"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"

	defaultDbName               = "leaderboard-syncer"
	defaultMaxPoolSize          = 10
	defaultConnectRetryTimes    = 5
	defaultConnectRetryInterval = 2 * time.Second
)

type DbConfig struct {
	Driver               string        `mapstructure:"driver"`
	Username             string        `mapstructure:"username"`
	Password             string        `mapstructure:"password"`
	DbName               string        `mapstructure:"db-name"`
	Address              string        `mapstructure:"address"`
	MaxPoolSize          uint64        `mapstructure:"max-pool-size"`
	ConnectRetryTimes    uint          `mapstructure:"connect-retry-times"`
	ConnectRetryInterval time.Duration `mapstructure:"connect-retry-interval"`
}

func (cfg *DbConfig) Validate() error {
	switch cfg.Driver {
	case DriverMongo:
	case DriverPostgres:
		// connection settings live in the postgres section
		return nil
	default:
		return fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}

	if cfg.Address == "" {
		return fmt.Errorf("db address is required")
	}
	if cfg.DbName == "" {
		return fmt.Errorf("db name is required")
	}
	if cfg.ConnectRetryTimes == 0 {
		return fmt.Errorf("db connect retry times should be positive")
	}

	return nil
}

type PostgresConfig struct {
	DSN      string `mapstructure:"dsn"`
	MaxConns int32  `mapstructure:"max-conns"`
}

func (cfg *PostgresConfig) Validate() error {
	if cfg.DSN == "" {
		return fmt.Errorf("postgres dsn is required")
	}
	if cfg.MaxConns < 0 {
		return fmt.Errorf("postgres max conns should not be negative")
	}

	return nil
}

package config

import "fmt"

const (
	defaultMetricsHost = "0.0.0.0"
	defaultMetricsPort = 2112
)

type MetricsConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (cfg *MetricsConfig) Validate() error {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("metrics server port must be between 0 and 65535")
	}

	return nil
}

func (cfg *MetricsConfig) GetMetricsAddr() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}

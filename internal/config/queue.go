package config

import (
	"fmt"
	"time"
)

type QueueConfig struct {
	Url            string        `mapstructure:"url"`
	QueueUser      string        `mapstructure:"queue-user"`
	QueuePassword  string        `mapstructure:"queue-password"`
	QueueName      string        `mapstructure:"queue-name"`
	PublishTimeout time.Duration `mapstructure:"publish-timeout"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.Url == "" {
		return fmt.Errorf("queue url is required")
	}
	if cfg.QueueName == "" {
		return fmt.Errorf("queue name is required")
	}
	if cfg.PublishTimeout <= 0 {
		return fmt.Errorf("queue publish timeout should be positive")
	}

	return nil
}

// AmqpURL builds the dial url, credentials are optional
func (cfg *QueueConfig) AmqpURL() string {
	if cfg.QueueUser == "" {
		return fmt.Sprintf("amqp://%s", cfg.Url)
	}
	return fmt.Sprintf("amqp://%s:%s@%s", cfg.QueueUser, cfg.QueuePassword, cfg.Url)
}

package config

import (
	"fmt"
)

// WorkerConfig aggregates every setting the notification worker binary needs
type WorkerConfig struct {
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Queue    QueueSettings    `mapstructure:"queue"`
}

// Validate checks every settings section of the worker configuration
func (c *WorkerConfig) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Queue.Validate(); err != nil {
		return err
	}
	if !c.Queue.Enabled {
		return fmt.Errorf("the worker requires the queue to be enabled")
	}
	return nil
}

// InitializeWorkerConfig loads and validates the worker configuration from
// the YAML file at configPath, with RECIPES_* environment overrides.
func InitializeWorkerConfig(configPath string) (*WorkerConfig, error) {
	v, err := newViper(configPath)
	if err != nil {
		return nil, err
	}

	var cfg WorkerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

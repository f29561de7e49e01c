package config

import (
	"fmt"
)

// RestConfig aggregates every setting the REST API binary needs
type RestConfig struct {
	Server   ServerSettings   `mapstructure:"server"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Cache    CacheSettings    `mapstructure:"cache"`
	Queue    QueueSettings    `mapstructure:"queue"`
}

// Validate checks every settings section of the REST configuration
func (c *RestConfig) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Queue.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig loads and validates the REST API configuration from
// the YAML file at configPath. Environment variables prefixed with RECIPES_
// override file values, e.g. RECIPES_DATABASE_DSN overrides database.dsn.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v, err := newViper(configPath)
	if err != nil {
		return nil, err
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

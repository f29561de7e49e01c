package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CacheSettings holds the settings for the read-through cache in front of
// recipe lookups. When disabled the service falls back to an in-process cache.
type CacheSettings struct {
	Enabled    bool   `mapstructure:"enabled"`
	RedisURL   string `mapstructure:"redis_url"`
	TTLSeconds int    `mapstructure:"ttl_seconds" validate:"omitempty,min=1,max=86400"`
}

// Validate checks that all fields in CacheSettings are valid
func (s *CacheSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CacheSettings: %w", err)
	}

	if s.Enabled && s.RedisURL == "" {
		return fmt.Errorf("redis url is required when the cache is enabled")
	}

	return nil
}

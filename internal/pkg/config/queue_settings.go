package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// QueueSettings holds the settings for the background task queue used to
// materialize social notifications.
type QueueSettings struct {
	Enabled     bool           `mapstructure:"enabled"`
	RedisURL    string         `mapstructure:"redis_url"`
	Concurrency int            `mapstructure:"concurrency" validate:"omitempty,min=1,max=100"`
	Queues      map[string]int `mapstructure:"queues"`
}

// Validate checks that all fields in QueueSettings are valid
func (s *QueueSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for QueueSettings: %w", err)
	}

	if s.Enabled && s.RedisURL == "" {
		return fmt.Errorf("redis url is required when the queue is enabled")
	}

	for name, weight := range s.Queues {
		if name == "" {
			return fmt.Errorf("queue name must not be empty")
		}
		if weight < 1 {
			return fmt.Errorf("queue '%s' must have a weight of at least 1", name)
		}
	}

	return nil
}

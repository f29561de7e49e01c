package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/PHedro/recipes/internal/infrastructure/queue"
	"github.com/PHedro/recipes/internal/pkg/logger"
)

// TaskTypeSocialEvent is the task type of social events queued for
// notification materialization.
const TaskTypeSocialEvent = "social:event"

// NewSocialEventTask wraps a social event into a queue task.
func NewSocialEventTask(event *social.Event) (*queue.Task, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to encode social event: %w", err)
	}

	return &queue.Task{Type: TaskTypeSocialEvent, Payload: payload}, nil
}

// RegisterSocialEventTask binds the social event handler to the queue server.
// The handler decodes the event and hands it to the notification service;
// undecodable tasks are dropped instead of retried.
func RegisterSocialEventTask(server queue.Server, notifications social.NotificationService, logger logger.Logger) {
	server.Register(TaskTypeSocialEvent, func(ctx context.Context, task queue.Task) error {
		var event social.Event
		if err := json.Unmarshal(task.Payload, &event); err != nil {
			logger.Error("Dropping undecodable social event task: ", err)
			return nil
		}

		return notifications.Materialize(ctx, &event)
	})
}

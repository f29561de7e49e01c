package app

import (
	"context"
	"encoding/json"
	"time"

	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/PHedro/recipes/internal/infrastructure/queue"
	"github.com/PHedro/recipes/internal/infrastructure/realtime"
	"github.com/PHedro/recipes/internal/pkg/logger"
)

// socialEventMaxRetry caps queue retries of one social event.
const socialEventMaxRetry = 5

// socialEventUniqueTTL is the window within which re-enqueues of the same
// event are dropped by the queue backend.
const socialEventUniqueTTL = time.Minute

// eventPublisher implements the EventPublisher interface. It hands events to
// the background queue for notification materialization and streams them to
// the per-recipe feed rooms.
type eventPublisher struct {
	queueClient queue.Client
	hub         *realtime.Hub
	logger      logger.Logger
}

// NewEventPublisher creates a new eventPublisher instance. A nil queue client
// or hub disables the respective delivery leg.
func NewEventPublisher(queueClient queue.Client, hub *realtime.Hub, logger logger.Logger) (social.EventPublisher, error) {
	return &eventPublisher{
		queueClient: queueClient,
		hub:         hub,
		logger:      logger,
	}, nil
}

// Publish forwards one social event. Delivery is best-effort: failures are
// logged and the write that produced the event is never rolled back.
func (p *eventPublisher) Publish(ctx context.Context, event *social.Event) {
	if p.queueClient != nil {
		p.enqueue(ctx, event)
	}

	if p.hub != nil {
		p.stream(event)
	}
}

func (p *eventPublisher) enqueue(ctx context.Context, event *social.Event) {
	task, err := NewSocialEventTask(event)
	if err != nil {
		p.logger.Error("Failed to encode social event ", event.SourceID, ": ", err)
		return
	}

	opts := queue.EnqueueOption{
		MaxRetry:  socialEventMaxRetry,
		UniqueTTL: socialEventUniqueTTL,
	}
	if _, err := p.queueClient.Enqueue(ctx, *task, opts); err != nil {
		p.logger.Error("Failed to enqueue social event ", event.SourceID, ": ", err)
	}
}

func (p *eventPublisher) stream(event *social.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to encode social event ", event.SourceID, ": ", err)
		return
	}

	delivered := p.hub.Broadcast(event.RecipeID, payload, event.ActorID)
	if delivered > 0 {
		p.logger.Info("Streamed ", event.Kind, " event on recipe ", event.RecipeID, " to ", delivered, " feed connections")
	}
}

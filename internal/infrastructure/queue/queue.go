// Package queue provides the background task queue used to hand social
// events to the notification worker.
package queue

import (
	"context"
	"time"
)

// Task represents a background job message with a type and opaque payload
// bytes. Payload encoding is up to callers.
type Task struct {
	Type    string
	Payload []byte
}

// Handler processes a Task. A non-nil error signals retry per adapter
// policy, so handlers must be idempotent.
type Handler func(ctx context.Context, task Task) error

// EnqueueOption controls enqueue behavior. Zero values mean "unspecified".
type EnqueueOption struct {
	// Queue is the logical queue name.
	Queue string
	// ProcessIn delays processing by the given duration.
	ProcessIn time.Duration
	// MaxRetry caps retries for the task.
	MaxRetry int
	// UniqueTTL drops duplicate tasks enqueued within the TTL window.
	UniqueTTL time.Duration
}

// Client enqueues tasks for background processing.
type Client interface {
	// Enqueue submits a task and returns its backend ID.
	Enqueue(ctx context.Context, task Task, opts ...EnqueueOption) (string, error)

	// Close releases the client's resources.
	Close() error
}

// Server runs background workers that handle tasks.
type Server interface {
	// Register binds a handler to a task type. All handlers must be
	// registered before Run.
	Register(taskType string, h Handler)

	// Run starts the workers and blocks until the context is canceled,
	// then shuts down gracefully.
	Run(ctx context.Context) error

	// Stop shuts the workers down gracefully.
	Stop(ctx context.Context) error
}

package social

import (
	"context"
	"time"
)

// Event kind constants
const (
	EventKindComment = "comment"
	EventKindLike    = "like"
)

// Event describes a comment or like that just happened on a recipe.
// SourceID is the ID of the new comment or like row; consumers load the row
// to resolve reply targets and liked comments.
type Event struct {
	Kind      string    `json:"kind"`
	SourceID  string    `json:"source_id"`
	ActorID   string    `json:"actor_id"`
	RecipeID  string    `json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher forwards social events to interested consumers, e.g. the
// notification queue and the realtime feed. Publishing is best-effort:
// implementations log failures, callers never roll back the write that
// produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, event *Event)
}

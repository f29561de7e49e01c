package social

import (
	"time"
)

// Notification kind constants
const (
	NotificationKindComment = "comment"
	NotificationKindReply   = "reply"
	NotificationKindLike    = "like"
)

// Notification tells a user that someone commented on or liked their
// content. Rows are materialized by the background worker from social
// events; SourceID is the ID of the comment or like that caused the
// notification, making materialization idempotent.
type Notification struct {
	ID        string     `validate:"required,uuid4"`
	CreatedAt time.Time  `validate:"required"`
	UpdatedAt time.Time  `validate:"required"`
	UserID    string     `validate:"required,uuid4"`
	ActorID   string     `validate:"required,uuid4"`
	RecipeID  string     `validate:"required,uuid4"`
	CommentID *string    `validate:"omitempty,uuid4"`
	Kind      string     `validate:"required,oneof=comment reply like"`
	SourceID  string     `validate:"required,uuid4"`
	ReadAt    *time.Time `validate:"omitempty"`
}

// Validate for validating Notification struct
func (n *Notification) Validate() error {
	return validateStruct(n)
}

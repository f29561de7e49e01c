package social

import (
	"context"
	"errors"
)

// Sentinel errors returned by social repositories and services.
var (
	// ErrNotFound marks lookups for rows that do not exist.
	ErrNotFound = errors.New("social record not found")
	// ErrDuplicate marks writes violating a uniqueness constraint.
	ErrDuplicate = errors.New("social record already exists")
	// ErrProtected marks deletes blocked by rows still referencing the target.
	ErrProtected = errors.New("social record is still referenced")
	// ErrCrossRecipe marks replies and comment likes pointing at a comment of
	// a different recipe.
	ErrCrossRecipe = errors.New("comment belongs to a different recipe")
)

// CommentInput carries the fields accepted when creating a comment. The user
// is always the authenticated caller.
type CommentInput struct {
	UserID      string  `validate:"required,uuid4"`
	RecipeID    string  `validate:"required,uuid4"`
	InReplyToID *string `validate:"omitempty,uuid4"`
	Content     string  `validate:"required"`
}

// Validate for validating CommentInput struct
func (in *CommentInput) Validate() error {
	return validateStruct(in)
}

// LikeInput carries the fields accepted when creating a like. The user is
// always the authenticated caller.
type LikeInput struct {
	UserID    string  `validate:"required,uuid4"`
	RecipeID  string  `validate:"required,uuid4"`
	CommentID *string `validate:"omitempty,uuid4"`
}

// Validate for validating LikeInput struct
func (in *LikeInput) Validate() error {
	return validateStruct(in)
}

// CommentService defines methods for managing recipe comments.
type CommentService interface {
	// List retrieves a page of comments matching the query filters.
	// It returns the page of comments, the total match count and any error encountered.
	List(ctx context.Context, query *CommentQuery) ([]*Comment, int64, error)

	// GetByID retrieves a comment by its unique ID.
	GetByID(ctx context.Context, commentID string) (*Comment, error)

	// Create stores a new comment after checking that a reply target, when
	// set, is a comment of the same recipe. A comment event is published on
	// success.
	Create(ctx context.Context, input *CommentInput) (*Comment, error)

	// UpdateContentByID replaces the content of a comment. The remaining
	// fields of a comment are immutable.
	UpdateContentByID(ctx context.Context, commentID, content string) (*Comment, error)

	// DeleteByID deletes a comment. Comments with replies or likes cannot be
	// deleted and yield ErrProtected.
	DeleteByID(ctx context.Context, commentID string) error
}

// LikeService defines methods for managing likes. Likes are immutable once
// created.
type LikeService interface {
	// List retrieves a page of likes matching the query filters.
	// It returns the page of likes, the total match count and any error encountered.
	List(ctx context.Context, query *LikeQuery) ([]*Like, int64, error)

	// GetByID retrieves a like by its unique ID.
	GetByID(ctx context.Context, likeID string) (*Like, error)

	// Create stores a new like after checking that a liked comment, when
	// set, belongs to the liked recipe. A like event is published on success.
	Create(ctx context.Context, input *LikeInput) (*Like, error)

	// DeleteByID deletes a like.
	DeleteByID(ctx context.Context, likeID string) error
}

// NotificationService defines methods for reading notifications and for
// materializing them from social events.
type NotificationService interface {
	// List retrieves a page of the querying user's notifications.
	List(ctx context.Context, query *NotificationQuery) ([]*Notification, int64, error)

	// MarkReadByID marks one of the user's notifications as read.
	// It returns ErrNotFound when the notification does not exist or belongs
	// to another user.
	MarkReadByID(ctx context.Context, notificationID, userID string) (*Notification, error)

	// Materialize turns a social event into a notification row for the
	// affected user. Self-notifications are skipped and re-deliveries of the
	// same event insert no second row.
	Materialize(ctx context.Context, event *Event) error
}

// CommentRepository defines the interface for comment persistence operations
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	List(ctx context.Context, query *CommentQuery) ([]*Comment, int64, error)
	GetByID(ctx context.Context, commentID string) (*Comment, error)
	UpdateByID(ctx context.Context, comment *Comment) error
	DeleteByID(ctx context.Context, commentID string) error
}

// LikeRepository defines the interface for like persistence operations
type LikeRepository interface {
	Create(ctx context.Context, like *Like) error
	List(ctx context.Context, query *LikeQuery) ([]*Like, int64, error)
	GetByID(ctx context.Context, likeID string) (*Like, error)
	DeleteByID(ctx context.Context, likeID string) error
}

// NotificationRepository defines the interface for notification persistence operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	List(ctx context.Context, query *NotificationQuery) ([]*Notification, int64, error)
	GetByID(ctx context.Context, notificationID string) (*Notification, error)
	UpdateByID(ctx context.Context, notification *Notification) error
}

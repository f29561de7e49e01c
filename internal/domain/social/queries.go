package social

// Pagination bounds for list queries.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// CommentQuery filters and paginates comment listings.
type CommentQuery struct {
	ID       string `validate:"omitempty,uuid4"`
	RecipeID string `validate:"omitempty,uuid4"`
	UserID   string `validate:"omitempty,uuid4"`
	Page     int    `validate:"min=1"`
	PageSize int    `validate:"min=1,max=100"`
}

// NewCommentQuery creates a CommentQuery with pagination defaults applied.
func NewCommentQuery() *CommentQuery {
	return &CommentQuery{
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Validate for validating CommentQuery struct
func (q *CommentQuery) Validate() error {
	return validateStruct(q)
}

// LikeQuery filters and paginates like listings.
type LikeQuery struct {
	ID        string `validate:"omitempty,uuid4"`
	RecipeID  string `validate:"omitempty,uuid4"`
	CommentID string `validate:"omitempty,uuid4"`
	UserID    string `validate:"omitempty,uuid4"`
	Page      int    `validate:"min=1"`
	PageSize  int    `validate:"min=1,max=100"`
}

// NewLikeQuery creates a LikeQuery with pagination defaults applied.
func NewLikeQuery() *LikeQuery {
	return &LikeQuery{
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Validate for validating LikeQuery struct
func (q *LikeQuery) Validate() error {
	return validateStruct(q)
}

// NotificationQuery filters and paginates a user's notification listings.
type NotificationQuery struct {
	UserID   string `validate:"required,uuid4"`
	Unread   bool
	Page     int `validate:"min=1"`
	PageSize int `validate:"min=1,max=100"`
}

// NewNotificationQuery creates a NotificationQuery for the given user with
// pagination defaults applied.
func NewNotificationQuery(userID string) *NotificationQuery {
	return &NotificationQuery{
		UserID:   userID,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Validate for validating NotificationQuery struct
func (q *NotificationQuery) Validate() error {
	return validateStruct(q)
}

package social

import (
	"time"
)

// Like marks that a user liked a recipe, or one specific comment of it when
// CommentID is set.
type Like struct {
	ID        string    `validate:"required,uuid4"`
	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time `validate:"required"`
	UserID    string    `validate:"required,uuid4"`
	RecipeID  string    `validate:"required,uuid4"`
	CommentID *string   `validate:"omitempty,uuid4"`
}

// Validate for validating Like struct
func (l *Like) Validate() error {
	return validateStruct(l)
}

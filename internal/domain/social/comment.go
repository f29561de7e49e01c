package social

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Comment is a user comment on a recipe, optionally replying to another
// comment of the same recipe.
type Comment struct {
	ID          string    `validate:"required,uuid4"`
	CreatedAt   time.Time `validate:"required"`
	UpdatedAt   time.Time `validate:"required"`
	UserID      string    `validate:"required,uuid4"`
	RecipeID    string    `validate:"required,uuid4"`
	InReplyToID *string   `validate:"omitempty,uuid4"`
	Content     string    `validate:"required"`
}

// Validate for validating Comment struct
func (c *Comment) Validate() error {
	return validateStruct(c)
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

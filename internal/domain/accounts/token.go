package accounts

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Token is an opaque API token granting its holder access as a user.
type Token struct {
	ID        string    `validate:"required,uuid4"`
	CreatedAt time.Time `validate:"required"`
	Key       string    `validate:"required,len=40,hexadecimal"`
	UserID    string    `validate:"required,uuid4"`
}

// Validate for validating Token struct
func (t *Token) Validate() error {
	validate := validator.New()

	err := validate.Struct(t)
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

package accounts

import (
	"errors"
	"fmt"
	"time"

	"github.com/PHedro/recipes/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// User entity
type User struct {
	ID        string    `validate:"required,uuid4"`
	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time `validate:"required"`
	Username  string    `validate:"required,min=1,max=150,username"`
	Email     string    `validate:"required,email,max=254"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("username", validators.UsernameValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(u)
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

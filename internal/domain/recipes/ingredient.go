package recipes

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Ingredient entity
type Ingredient struct {
	ID        string    `validate:"required,uuid4"`
	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time `validate:"required"`
	Name      string    `validate:"required,min=1,max=255"`
}

// Validate for validating Ingredient struct
func (i *Ingredient) Validate() error {
	validate := validator.New()

	err := validate.Struct(i)
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

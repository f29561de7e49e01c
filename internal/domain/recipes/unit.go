package recipes

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Unit is a measurement unit for ingredient quantities, e.g. gram or cup.
type Unit struct {
	ID           string    `validate:"required,uuid4"`
	CreatedAt    time.Time `validate:"required"`
	UpdatedAt    time.Time `validate:"required"`
	Name         string    `validate:"required,min=1,max=255"`
	Abbreviation string    `validate:"required,min=1,max=10"`
}

// Validate for validating Unit struct
func (u *Unit) Validate() error {
	validate := validator.New()

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

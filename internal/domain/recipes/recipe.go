package recipes

import (
	"errors"
	"fmt"
	"time"

	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/PHedro/recipes/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// RecipeIngredient is one line of a recipe: an ingredient with its
// unit-qualified quantity.
type RecipeIngredient struct {
	ID         string      `validate:"required,uuid4"`
	CreatedAt  time.Time   `validate:"required"`
	UpdatedAt  time.Time   `validate:"required"`
	Ingredient *Ingredient `validate:"required"`
	Unit       *Unit       `validate:"required"`
	Quantity   float64     `validate:"required,gt=0"`
}

// Recipe entity
type Recipe struct {
	ID                       string              `validate:"required,uuid4"`
	CreatedAt                time.Time           `validate:"required"`
	UpdatedAt                time.Time           `validate:"required"`
	Name                     string              `validate:"required,min=1,max=255"`
	Serves                   uint                `validate:"required,gt=0"`
	PreparationTimeInMinutes uint                `validate:"required,gt=0"`
	Preparation              string              `validate:"required"`
	Author                   *accounts.User      `validate:"required"`
	Ingredients              []*RecipeIngredient `validate:"omitempty,dive,required"`
}

// Validate for validating Recipe struct
func (r *Recipe) Validate() error {
	validate := validator.New()

	// The nested author carries the username tag.
	if err := validate.RegisterValidation("username", validators.UsernameValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(r)
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

// Validate for validating RecipeIngredient struct
func (ri *RecipeIngredient) Validate() error {
	validate := validator.New()

	err := validate.Struct(ri)
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

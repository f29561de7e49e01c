package recipes

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Pagination bounds for list queries.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// UnitQuery filters and paginates unit listings.
type UnitQuery struct {
	ID       string `validate:"omitempty,uuid4"`
	Name     string `validate:"omitempty,max=255"`
	Page     int    `validate:"min=1"`
	PageSize int    `validate:"min=1,max=100"`
}

// NewUnitQuery creates a UnitQuery with pagination defaults applied.
func NewUnitQuery() *UnitQuery {
	return &UnitQuery{
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Validate for validating UnitQuery struct
func (q *UnitQuery) Validate() error {
	return validateQuery(q)
}

// IngredientQuery filters and paginates ingredient listings.
type IngredientQuery struct {
	ID       string `validate:"omitempty,uuid4"`
	Name     string `validate:"omitempty,max=255"`
	Page     int    `validate:"min=1"`
	PageSize int    `validate:"min=1,max=100"`
}

// NewIngredientQuery creates an IngredientQuery with pagination defaults applied.
func NewIngredientQuery() *IngredientQuery {
	return &IngredientQuery{
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Validate for validating IngredientQuery struct
func (q *IngredientQuery) Validate() error {
	return validateQuery(q)
}

// RecipeQuery filters and paginates recipe listings. Zero values mean the
// filter is not applied.
type RecipeQuery struct {
	ID                       string `validate:"omitempty,uuid4"`
	Name                     string `validate:"omitempty,max=255"`
	Serves                   uint   `validate:"omitempty"`
	PreparationTimeInMinutes uint   `validate:"omitempty"`
	AuthorID                 string `validate:"omitempty,uuid4"`
	Page                     int    `validate:"min=1"`
	PageSize                 int    `validate:"min=1,max=100"`
}

// NewRecipeQuery creates a RecipeQuery with pagination defaults applied.
func NewRecipeQuery() *RecipeQuery {
	return &RecipeQuery{
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Validate for validating RecipeQuery struct
func (q *RecipeQuery) Validate() error {
	return validateQuery(q)
}

func validateQuery(q interface{}) error {
	validate := validator.New()

	err := validate.Struct(q)
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

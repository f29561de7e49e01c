package recipes

import (
	"fmt"
)

// AuthorRef identifies an existing user in a recipe payload, either by ID or
// by one of the unique account fields.
type AuthorRef struct {
	ID       string `validate:"omitempty,uuid4"`
	Username string `validate:"omitempty,max=150"`
	Email    string `validate:"omitempty,email,max=254"`
}

// IngredientRef identifies an ingredient in a recipe payload by ID or unique
// name. Unknown names cause a new ingredient to be created.
type IngredientRef struct {
	ID   string `validate:"omitempty,uuid4"`
	Name string `validate:"omitempty,min=1,max=255"`
}

// UnitRef identifies a measurement unit in a recipe payload by ID or unique
// name. Unknown names cause a new unit to be created, which requires an
// abbreviation as well.
type UnitRef struct {
	ID           string `validate:"omitempty,uuid4"`
	Name         string `validate:"omitempty,min=1,max=255"`
	Abbreviation string `validate:"omitempty,min=1,max=10"`
}

// RecipeIngredientInput is one ingredient line of a recipe payload. Lines
// carrying the ID of an existing line update it, lines without an ID create
// a new one.
type RecipeIngredientInput struct {
	ID         string        `validate:"omitempty,uuid4"`
	Ingredient IngredientRef `validate:"required"`
	Unit       UnitRef       `validate:"required"`
	Quantity   float64       `validate:"required,gt=0"`
}

// RecipeInput carries the fields accepted when creating or fully updating a
// recipe.
type RecipeInput struct {
	Name                     string                  `validate:"required,min=1,max=255"`
	Serves                   uint                    `validate:"required,gt=0"`
	PreparationTimeInMinutes uint                    `validate:"required,gt=0"`
	Preparation              string                  `validate:"required"`
	Author                   AuthorRef               `validate:"required"`
	Ingredients              []RecipeIngredientInput `validate:"omitempty,dive"`
}

// Validate for validating RecipeInput struct
func (in *RecipeInput) Validate() error {
	if err := validateQuery(in); err != nil {
		return err
	}
	if in.Author.ID == "" && in.Author.Username == "" && in.Author.Email == "" {
		return fmt.Errorf("validation failed: author must carry an id, username or email")
	}
	return nil
}

// RecipePatch carries the subset of recipe fields present in a partial
// update. Nil fields are left untouched; a non-nil Ingredients slice
// replaces the linked set wholesale.
type RecipePatch struct {
	Name                     *string                  `validate:"omitempty,min=1,max=255"`
	Serves                   *uint                    `validate:"omitempty,gt=0"`
	PreparationTimeInMinutes *uint                    `validate:"omitempty,gt=0"`
	Preparation              *string                  `validate:"omitempty,min=1"`
	Author                   *AuthorRef               `validate:"omitempty"`
	Ingredients              *[]RecipeIngredientInput `validate:"omitempty"`
}

// Validate for validating RecipePatch struct
func (p *RecipePatch) Validate() error {
	if err := validateQuery(p); err != nil {
		return err
	}
	if p.Ingredients != nil {
		for i := range *p.Ingredients {
			if err := validateQuery(&(*p.Ingredients)[i]); err != nil {
				return fmt.Errorf("ingredient line %d: %w", i, err)
			}
		}
	}
	return nil
}

// UnitPatch carries the subset of unit fields present in a partial update.
type UnitPatch struct {
	Name         *string `validate:"omitempty,min=1,max=255"`
	Abbreviation *string `validate:"omitempty,min=1,max=10"`
}

// Validate for validating UnitPatch struct
func (p *UnitPatch) Validate() error {
	return validateQuery(p)
}

// IngredientPatch carries the subset of ingredient fields present in a
// partial update.
type IngredientPatch struct {
	Name *string `validate:"omitempty,min=1,max=255"`
}

// Validate for validating IngredientPatch struct
func (p *IngredientPatch) Validate() error {
	return validateQuery(p)
}

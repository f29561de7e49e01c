//go:build unit
// +build unit

package recipes

import (
	"strings"
	"testing"
	"time"

	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestUser() *accounts.User {
	return &accounts.User{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Username:  "chef",
		Email:     "chef@example.com",
	}
}

func validTestUnit() *Unit {
	return &Unit{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		Name:         "gram",
		Abbreviation: "g",
	}
}

func validTestIngredient() *Ingredient {
	return &Ingredient{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Name:      "flour",
	}
}

func validTestRecipe() *Recipe {
	return &Recipe{
		ID:                       uuid.New().String(),
		CreatedAt:                time.Now(),
		UpdatedAt:                time.Now(),
		Name:                     "Bread",
		Serves:                   4,
		PreparationTimeInMinutes: 90,
		Preparation:              "Mix, knead, proof, bake.",
		Author:                   validTestUser(),
		Ingredients: []*RecipeIngredient{
			{
				ID:         uuid.New().String(),
				CreatedAt:  time.Now(),
				UpdatedAt:  time.Now(),
				Ingredient: validTestIngredient(),
				Unit:       validTestUnit(),
				Quantity:   500,
			},
		},
	}
}

func TestUnitValidation(t *testing.T) {
	unit := validTestUnit()
	require.NoError(t, unit.Validate())

	unit.Name = ""
	err := unit.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Name, Tag: required")

	unit = validTestUnit()
	unit.Abbreviation = "tablespoons!!"
	err = unit.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Abbreviation, Tag: max")
}

func TestIngredientValidation(t *testing.T) {
	ingredient := validTestIngredient()
	require.NoError(t, ingredient.Validate())

	ingredient.ID = "not-a-uuid"
	err := ingredient.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: ID, Tag: uuid4")
}

func TestRecipeValidation(t *testing.T) {
	recipe := validTestRecipe()
	require.NoError(t, recipe.Validate())

	recipe.Serves = 0
	err := recipe.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Serves, Tag: required")

	recipe = validTestRecipe()
	recipe.Author = nil
	err = recipe.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Author, Tag: required")

	recipe = validTestRecipe()
	recipe.Ingredients[0].Quantity = -1
	err = recipe.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Quantity, Tag: gt")
}

func TestRecipeIngredientValidation(t *testing.T) {
	line := &RecipeIngredient{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
		Ingredient: validTestIngredient(),
		Unit:       validTestUnit(),
		Quantity:   2.5,
	}
	require.NoError(t, line.Validate())

	line.Unit = nil
	err := line.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Unit, Tag: required")
}

func TestQueryDefaults(t *testing.T) {
	unitQuery := NewUnitQuery()
	assert.Equal(t, 1, unitQuery.Page)
	assert.Equal(t, DefaultPageSize, unitQuery.PageSize)
	require.NoError(t, unitQuery.Validate())

	recipeQuery := NewRecipeQuery()
	recipeQuery.PageSize = MaxPageSize + 1
	require.Error(t, recipeQuery.Validate())

	recipeQuery = NewRecipeQuery()
	recipeQuery.Page = 0
	require.Error(t, recipeQuery.Validate())

	ingredientQuery := NewIngredientQuery()
	ingredientQuery.ID = "not-a-uuid"
	require.Error(t, ingredientQuery.Validate())
}

func TestRecipeInputValidation(t *testing.T) {
	input := &RecipeInput{
		Name:                     "Bread",
		Serves:                   4,
		PreparationTimeInMinutes: 90,
		Preparation:              "Mix, knead, proof, bake.",
		Author:                   AuthorRef{ID: uuid.New().String()},
		Ingredients: []RecipeIngredientInput{
			{
				Ingredient: IngredientRef{Name: "flour"},
				Unit:       UnitRef{Name: "gram", Abbreviation: "g"},
				Quantity:   500,
			},
		},
	}
	require.NoError(t, input.Validate())

	input.Author = AuthorRef{}
	require.Error(t, input.Validate())

	input.Author = AuthorRef{Username: "chef"}
	input.Ingredients[0].Quantity = 0
	err := input.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Quantity, Tag: required")
}

func TestRecipePatchValidation(t *testing.T) {
	empty := &RecipePatch{}
	require.NoError(t, empty.Validate())

	name := strings.Repeat("x", 256)
	patch := &RecipePatch{Name: &name}
	require.Error(t, patch.Validate())

	lines := []RecipeIngredientInput{
		{
			Ingredient: IngredientRef{Name: "flour"},
			Unit:       UnitRef{ID: uuid.New().String()},
			Quantity:   250,
		},
	}
	patch = &RecipePatch{Ingredients: &lines}
	require.NoError(t, patch.Validate())

	lines[0].Quantity = -3
	require.Error(t, patch.Validate())
}

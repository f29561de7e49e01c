//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/PHedro/recipes/internal/infrastructure/persistence/models"
	"github.com/PHedro/recipes/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipePostgresRepository_CreateAndGetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	author := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), author))

	unit := CreateTestUnit(t, "gram", "g")
	require.NoError(t, ctx.UnitRepo.Create(context.Background(), unit))
	flour := CreateTestIngredient(t, "flour")
	require.NoError(t, ctx.IngredientRepo.Create(context.Background(), flour))

	recipe := CreateTestRecipe(t, author, CreateTestLine(t, flour, unit, 500))
	require.NoError(t, ctx.RecipeRepo.Create(context.Background(), recipe))

	fetched, err := ctx.RecipeRepo.GetByID(context.Background(), recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.Name, fetched.Name)
	assert.Equal(t, author.Username, fetched.Author.Username)
	require.Len(t, fetched.Ingredients, 1)
	assert.Equal(t, "flour", fetched.Ingredients[0].Ingredient.Name)
}

func TestRecipePostgresRepository_UpdateByID_ReplacesLines(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	author := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), author))

	unit := CreateTestUnit(t, "gram", "g")
	require.NoError(t, ctx.UnitRepo.Create(context.Background(), unit))
	flour := CreateTestIngredient(t, "flour")
	require.NoError(t, ctx.IngredientRepo.Create(context.Background(), flour))
	salt := CreateTestIngredient(t, "salt")
	require.NoError(t, ctx.IngredientRepo.Create(context.Background(), salt))

	droppedLine := CreateTestLine(t, flour, unit, 500)
	recipe := CreateTestRecipe(t, author, droppedLine)
	require.NoError(t, ctx.RecipeRepo.Create(context.Background(), recipe))

	recipe.Ingredients = []*recipes.RecipeIngredient{CreateTestLine(t, salt, unit, 12)}
	require.NoError(t, ctx.RecipeRepo.UpdateByID(context.Background(), recipe))

	fetched, err := ctx.RecipeRepo.GetByID(context.Background(), recipe.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Ingredients, 1)
	assert.Equal(t, "salt", fetched.Ingredients[0].Ingredient.Name)

	var lineCount int64
	require.NoError(t, ctx.DB.Model(&models.RecipeIngredientModel{}).Where("id = ?", droppedLine.ID).Count(&lineCount).Error)
	assert.EqualValues(t, 0, lineCount)
}

func TestRecipePostgresRepository_DeleteByID_ProtectedByLike(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	author := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), author))

	recipe := CreateTestRecipe(t, author)
	require.NoError(t, ctx.RecipeRepo.Create(context.Background(), recipe))

	like := CreateTestLike(t, author.ID, recipe.ID)
	require.NoError(t, ctx.LikeRepo.Create(context.Background(), like))

	err := ctx.RecipeRepo.DeleteByID(context.Background(), recipe.ID)
	assert.ErrorIs(t, err, recipes.ErrProtected)

	// Once the like is gone the recipe deletes cleanly
	require.NoError(t, ctx.LikeRepo.DeleteByID(context.Background(), like.ID))
	require.NoError(t, ctx.RecipeRepo.DeleteByID(context.Background(), recipe.ID))
}

func TestUnitPostgresRepository_Create_DuplicateName(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	require.NoError(t, ctx.UnitRepo.Create(context.Background(), CreateTestUnit(t, "gram", "g")))

	err := ctx.UnitRepo.Create(context.Background(), CreateTestUnit(t, "gram", "gr"))
	assert.ErrorIs(t, err, recipes.ErrDuplicate)
}

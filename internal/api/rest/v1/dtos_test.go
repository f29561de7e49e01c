//go:build unit
// +build unit

package v1

import (
	"strings"
	"testing"
	"time"

	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCreateUnitRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   CreateUnitRequest
		shouldErr bool
	}{
		{"Valid unit", CreateUnitRequest{Name: "gram", Abbreviation: "g"}, false},
		{"Missing name", CreateUnitRequest{Abbreviation: "g"}, true},
		{"Missing abbreviation", CreateUnitRequest{Name: "gram"}, true},
		{"Abbreviation too long", CreateUnitRequest{Name: "gram", Abbreviation: "grams-forever"}, true},
		{"Name too long", CreateUnitRequest{Name: strings.Repeat("g", 256), Abbreviation: "g"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestCreateRecipeRequest_Validate(t *testing.T) {
	validLine := RecipeIngredientRequest{
		Ingredient: IngredientRefRequest{Name: "flour"},
		Unit:       UnitRefRequest{Name: "gram", Abbreviation: "g"},
		Quantity:   500,
	}

	tests := []struct {
		name      string
		request   CreateRecipeRequest
		shouldErr bool
	}{
		{"Valid recipe", CreateRecipeRequest{
			Name:                     "Plain bread",
			Serves:                   4,
			PreparationTimeInMinutes: 90,
			Preparation:              "Mix, proof, bake.",
			Author:                   AuthorRefRequest{Username: "baker"},
			Ingredients:              []RecipeIngredientRequest{validLine},
		}, false},
		{"Valid without ingredients", CreateRecipeRequest{
			Name:                     "Water",
			Serves:                   1,
			PreparationTimeInMinutes: 1,
			Preparation:              "Pour.",
			Author:                   AuthorRefRequest{Username: "baker"},
		}, false},
		{"Missing name", CreateRecipeRequest{
			Serves:                   4,
			PreparationTimeInMinutes: 90,
			Preparation:              "Mix.",
			Author:                   AuthorRefRequest{Username: "baker"},
		}, true},
		{"Zero serves", CreateRecipeRequest{
			Name:                     "Plain bread",
			PreparationTimeInMinutes: 90,
			Preparation:              "Mix.",
			Author:                   AuthorRefRequest{Username: "baker"},
		}, true},
		{"Empty author reference", CreateRecipeRequest{
			Name:                     "Plain bread",
			Serves:                   4,
			PreparationTimeInMinutes: 90,
			Preparation:              "Mix.",
			Ingredients:              []RecipeIngredientRequest{validLine},
		}, true},
		{"Author by malformed id", CreateRecipeRequest{
			Name:                     "Plain bread",
			Serves:                   4,
			PreparationTimeInMinutes: 90,
			Preparation:              "Mix.",
			Author:                   AuthorRefRequest{ID: "not-a-uuid"},
		}, true},
		{"Line without quantity", CreateRecipeRequest{
			Name:                     "Plain bread",
			Serves:                   4,
			PreparationTimeInMinutes: 90,
			Preparation:              "Mix.",
			Author:                   AuthorRefRequest{Username: "baker"},
			Ingredients: []RecipeIngredientRequest{{
				Ingredient: IngredientRefRequest{Name: "flour"},
				Unit:       UnitRefRequest{Name: "gram", Abbreviation: "g"},
			}},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestPatchRecipeRequest_Validate(t *testing.T) {
	longName := strings.Repeat("x", 256)
	lines := []RecipeIngredientRequest{{
		Ingredient: IngredientRefRequest{Name: "flour"},
		Unit:       UnitRefRequest{Name: "gram", Abbreviation: "g"},
	}}

	tests := []struct {
		name      string
		request   PatchRecipeRequest
		shouldErr bool
	}{
		{"Empty patch", PatchRecipeRequest{}, false},
		{"Name too long", PatchRecipeRequest{Name: &longName}, true},
		{"Line without quantity", PatchRecipeRequest{Ingredients: &lines}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestCreateCommentRequest_Validate(t *testing.T) {
	parentID := uuid.NewString()
	badParentID := "not-a-uuid"

	tests := []struct {
		name      string
		request   CreateCommentRequest
		shouldErr bool
	}{
		{"Valid comment", CreateCommentRequest{RecipeID: uuid.NewString(), Content: "Lovely"}, false},
		{"Valid reply", CreateCommentRequest{RecipeID: uuid.NewString(), InReplyToID: &parentID, Content: "Agreed"}, false},
		{"Missing recipe", CreateCommentRequest{Content: "Lovely"}, true},
		{"Malformed recipe id", CreateCommentRequest{RecipeID: "not-a-uuid", Content: "Lovely"}, true},
		{"Malformed reply id", CreateCommentRequest{RecipeID: uuid.NewString(), InReplyToID: &badParentID, Content: "Agreed"}, true},
		{"Missing content", CreateCommentRequest{RecipeID: uuid.NewString()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestCreateLikeRequest_Validate(t *testing.T) {
	commentID := uuid.NewString()

	tests := []struct {
		name      string
		request   CreateLikeRequest
		shouldErr bool
	}{
		{"Valid recipe like", CreateLikeRequest{RecipeID: uuid.NewString()}, false},
		{"Valid comment like", CreateLikeRequest{RecipeID: uuid.NewString(), CommentID: &commentID}, false},
		{"Missing recipe", CreateLikeRequest{}, true},
		{"Malformed recipe id", CreateLikeRequest{RecipeID: "not-a-uuid"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestNewRecipeResponse_MapsNestedRows(t *testing.T) {
	now := time.Now()
	recipe := &recipes.Recipe{
		ID:                       uuid.NewString(),
		CreatedAt:                now,
		UpdatedAt:                now,
		Name:                     "Plain bread",
		Serves:                   4,
		PreparationTimeInMinutes: 90,
		Preparation:              "Mix, proof, bake.",
		Author: &accounts.User{
			ID:       uuid.NewString(),
			Username: "baker",
			Email:    "baker@example.com",
		},
		Ingredients: []*recipes.RecipeIngredient{{
			ID:         uuid.NewString(),
			CreatedAt:  now,
			UpdatedAt:  now,
			Ingredient: &recipes.Ingredient{ID: uuid.NewString(), Name: "flour"},
			Unit:       &recipes.Unit{ID: uuid.NewString(), Name: "gram", Abbreviation: "g"},
			Quantity:   500,
		}},
	}

	response := newRecipeResponse(recipe)

	require.Equal(t, recipe.ID, response.ID)
	require.Equal(t, "baker", response.Author.Username)
	require.Len(t, response.Ingredients, 1)
	require.Equal(t, "flour", response.Ingredients[0].Ingredient.Name)
	require.Equal(t, "g", response.Ingredients[0].Unit.Abbreviation)
	require.Equal(t, 500.0, response.Ingredients[0].Quantity)
}

func TestErrorResponse_Creation(t *testing.T) {
	errResp := ErrorResponse{
		Message: "Test error",
	}

	require.Equal(t, "Test error", errResp.Message)
}

func TestInfoResponse_Creation(t *testing.T) {
	infoResp := InfoResponse{
		Message: "ok",
	}

	require.Equal(t, "ok", infoResp.Message)
}

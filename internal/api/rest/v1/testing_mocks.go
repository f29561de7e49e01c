//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, tokenKey string) (*accounts.User, error) {
	args := m.Called(ctx, tokenKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

// MockUnitService is a mock implementation of UnitService
type MockUnitService struct {
	mock.Mock
}

func (m *MockUnitService) List(ctx context.Context, query *recipes.UnitQuery) ([]*recipes.Unit, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*recipes.Unit), args.Get(1).(int64), args.Error(2)
}

func (m *MockUnitService) GetByID(ctx context.Context, unitID string) (*recipes.Unit, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Unit), args.Error(1)
}

func (m *MockUnitService) Create(ctx context.Context, name, abbreviation string) (*recipes.Unit, error) {
	args := m.Called(ctx, name, abbreviation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Unit), args.Error(1)
}

func (m *MockUnitService) UpdateByID(ctx context.Context, unitID, name, abbreviation string) (*recipes.Unit, error) {
	args := m.Called(ctx, unitID, name, abbreviation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Unit), args.Error(1)
}

func (m *MockUnitService) PatchByID(ctx context.Context, unitID string, patch *recipes.UnitPatch) (*recipes.Unit, error) {
	args := m.Called(ctx, unitID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Unit), args.Error(1)
}

func (m *MockUnitService) DeleteByID(ctx context.Context, unitID string) error {
	args := m.Called(ctx, unitID)
	return args.Error(0)
}

// MockIngredientService is a mock implementation of IngredientService
type MockIngredientService struct {
	mock.Mock
}

func (m *MockIngredientService) List(ctx context.Context, query *recipes.IngredientQuery) ([]*recipes.Ingredient, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*recipes.Ingredient), args.Get(1).(int64), args.Error(2)
}

func (m *MockIngredientService) GetByID(ctx context.Context, ingredientID string) (*recipes.Ingredient, error) {
	args := m.Called(ctx, ingredientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Ingredient), args.Error(1)
}

func (m *MockIngredientService) Create(ctx context.Context, name string) (*recipes.Ingredient, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Ingredient), args.Error(1)
}

func (m *MockIngredientService) UpdateByID(ctx context.Context, ingredientID, name string) (*recipes.Ingredient, error) {
	args := m.Called(ctx, ingredientID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Ingredient), args.Error(1)
}

func (m *MockIngredientService) PatchByID(ctx context.Context, ingredientID string, patch *recipes.IngredientPatch) (*recipes.Ingredient, error) {
	args := m.Called(ctx, ingredientID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Ingredient), args.Error(1)
}

func (m *MockIngredientService) DeleteByID(ctx context.Context, ingredientID string) error {
	args := m.Called(ctx, ingredientID)
	return args.Error(0)
}

// MockRecipeService is a mock implementation of RecipeService
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) List(ctx context.Context, query *recipes.RecipeQuery) ([]*recipes.Recipe, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*recipes.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeService) GetByID(ctx context.Context, recipeID string) (*recipes.Recipe, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Recipe), args.Error(1)
}

func (m *MockRecipeService) Create(ctx context.Context, input *recipes.RecipeInput) (*recipes.Recipe, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Recipe), args.Error(1)
}

func (m *MockRecipeService) UpdateByID(ctx context.Context, recipeID string, input *recipes.RecipeInput) (*recipes.Recipe, error) {
	args := m.Called(ctx, recipeID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Recipe), args.Error(1)
}

func (m *MockRecipeService) PatchByID(ctx context.Context, recipeID string, patch *recipes.RecipePatch) (*recipes.Recipe, error) {
	args := m.Called(ctx, recipeID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Recipe), args.Error(1)
}

func (m *MockRecipeService) DeleteByID(ctx context.Context, recipeID string) error {
	args := m.Called(ctx, recipeID)
	return args.Error(0)
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) List(ctx context.Context, query *social.CommentQuery) ([]*social.Comment, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*social.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentService) GetByID(ctx context.Context, commentID string) (*social.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Comment), args.Error(1)
}

func (m *MockCommentService) Create(ctx context.Context, input *social.CommentInput) (*social.Comment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Comment), args.Error(1)
}

func (m *MockCommentService) UpdateContentByID(ctx context.Context, commentID, content string) (*social.Comment, error) {
	args := m.Called(ctx, commentID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteByID(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

// MockLikeService is a mock implementation of LikeService
type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) List(ctx context.Context, query *social.LikeQuery) ([]*social.Like, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*social.Like), args.Get(1).(int64), args.Error(2)
}

func (m *MockLikeService) GetByID(ctx context.Context, likeID string) (*social.Like, error) {
	args := m.Called(ctx, likeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Like), args.Error(1)
}

func (m *MockLikeService) Create(ctx context.Context, input *social.LikeInput) (*social.Like, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Like), args.Error(1)
}

func (m *MockLikeService) DeleteByID(ctx context.Context, likeID string) error {
	args := m.Called(ctx, likeID)
	return args.Error(0)
}

// MockNotificationService is a mock implementation of NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) List(ctx context.Context, query *social.NotificationQuery) ([]*social.Notification, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*social.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationService) MarkReadByID(ctx context.Context, notificationID, userID string) (*social.Notification, error) {
	args := m.Called(ctx, notificationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Notification), args.Error(1)
}

func (m *MockNotificationService) Materialize(ctx context.Context, event *social.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/PHedro/recipes/internal/infrastructure/cache"
	"github.com/PHedro/recipes/internal/infrastructure/persistence"
	"github.com/PHedro/recipes/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// CapturePublisher collects published social events so tests can assert on
// them and replay them against the notification service.
type CapturePublisher struct {
	Events []*social.Event
}

// Publish records the event.
func (p *CapturePublisher) Publish(_ context.Context, event *social.Event) {
	p.Events = append(p.Events, event)
}

// TestServices holds all application services and dependencies for integration tests
type TestServices struct {
	UserService         accounts.UserService
	AuthService         accounts.AuthService
	UnitService         recipes.UnitService
	IngredientService   recipes.IngredientService
	RecipeService       recipes.RecipeService
	CommentService      social.CommentService
	LikeService         social.LikeService
	NotificationService social.NotificationService

	// Publisher captures the events published by the comment and like services
	Publisher *CapturePublisher

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	userService, err := NewUserService(dbContext.UserRepo, dbContext.TokenRepo, logger)
	require.NoError(t, err, "Failed to create UserService")

	authService, err := NewAuthService(dbContext.TokenRepo, dbContext.UserRepo, logger)
	require.NoError(t, err, "Failed to create AuthService")

	unitService, err := NewUnitService(dbContext.UnitRepo, logger)
	require.NoError(t, err, "Failed to create UnitService")

	ingredientService, err := NewIngredientService(dbContext.IngredientRepo, logger)
	require.NoError(t, err, "Failed to create IngredientService")

	recipeCache := cache.NewMemoryCache()
	t.Cleanup(func() { _ = recipeCache.Close() })

	recipeService, err := NewRecipeService(
		dbContext.RecipeRepo,
		dbContext.IngredientRepo,
		dbContext.UnitRepo,
		dbContext.UserRepo,
		recipeCache,
		time.Minute,
		logger,
	)
	require.NoError(t, err, "Failed to create RecipeService")

	publisher := &CapturePublisher{}

	commentService, err := NewCommentService(dbContext.CommentRepo, publisher, logger)
	require.NoError(t, err, "Failed to create CommentService")

	likeService, err := NewLikeService(dbContext.LikeRepo, dbContext.CommentRepo, publisher, logger)
	require.NoError(t, err, "Failed to create LikeService")

	notificationService, err := NewNotificationService(
		dbContext.NotificationRepo,
		dbContext.CommentRepo,
		dbContext.LikeRepo,
		dbContext.RecipeRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create NotificationService")

	return &TestServices{
		UserService:         userService,
		AuthService:         authService,
		UnitService:         unitService,
		IngredientService:   ingredientService,
		RecipeService:       recipeService,
		CommentService:      commentService,
		LikeService:         likeService,
		NotificationService: notificationService,
		Publisher:           publisher,
		DBContext:           dbContext,
	}
}

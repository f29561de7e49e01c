//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/PHedro/recipes/internal/pkg/config"
	"github.com/PHedro/recipes/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB               *gorm.DB
	UserRepo         accounts.UserRepository
	TokenRepo        accounts.TokenRepository
	UnitRepo         recipes.UnitRepository
	IngredientRepo   recipes.IngredientRepository
	RecipeRepo       recipes.RecipeRepository
	CommentRepo      social.CommentRepository
	LikeRepo         social.LikeRepository
	NotificationRepo social.NotificationRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = Migrate(db)
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	logger := testutil.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	tokenRepo, err := NewGormTokenRepository(db, logger)
	require.NoError(t, err, "Failed to create token repository")

	unitRepo, err := NewGormUnitRepository(db, logger)
	require.NoError(t, err, "Failed to create unit repository")

	ingredientRepo, err := NewGormIngredientRepository(db, logger)
	require.NoError(t, err, "Failed to create ingredient repository")

	recipeRepo, err := NewGormRecipeRepository(db, logger)
	require.NoError(t, err, "Failed to create recipe repository")

	commentRepo, err := NewGormCommentRepository(db, logger)
	require.NoError(t, err, "Failed to create comment repository")

	likeRepo, err := NewGormLikeRepository(db, logger)
	require.NoError(t, err, "Failed to create like repository")

	notificationRepo, err := NewGormNotificationRepository(db, logger)
	require.NoError(t, err, "Failed to create notification repository")

	return &TestContext{
		DB:               db,
		UserRepo:         userRepo,
		TokenRepo:        tokenRepo,
		UnitRepo:         unitRepo,
		IngredientRepo:   ingredientRepo,
		RecipeRepo:       recipeRepo,
		CommentRepo:      commentRepo,
		LikeRepo:         likeRepo,
		NotificationRepo: notificationRepo,
	}
}

// CreateTestUser creates a user entity with unique credentials
func CreateTestUser(t *testing.T) *accounts.User {
	t.Helper()

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return &accounts.User{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Username:  "user_" + suffix,
		Email:     "user_" + suffix + "@example.com",
	}
}

// CreateTestUnit creates a unit entity with the given name and abbreviation
func CreateTestUnit(t *testing.T, name, abbreviation string) *recipes.Unit {
	t.Helper()

	return &recipes.Unit{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		Name:         name,
		Abbreviation: abbreviation,
	}
}

// CreateTestIngredient creates an ingredient entity with the given name
func CreateTestIngredient(t *testing.T, name string) *recipes.Ingredient {
	t.Helper()

	return &recipes.Ingredient{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Name:      name,
	}
}

// CreateTestLine creates a recipe ingredient line for the given ingredient and unit
func CreateTestLine(t *testing.T, ingredient *recipes.Ingredient, unit *recipes.Unit, quantity float64) *recipes.RecipeIngredient {
	t.Helper()

	return &recipes.RecipeIngredient{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
		Ingredient: ingredient,
		Unit:       unit,
		Quantity:   quantity,
	}
}

// CreateTestRecipe creates a recipe entity authored by the given user
func CreateTestRecipe(t *testing.T, author *accounts.User, lines ...*recipes.RecipeIngredient) *recipes.Recipe {
	t.Helper()

	return &recipes.Recipe{
		ID:                       uuid.NewString(),
		CreatedAt:                time.Now(),
		UpdatedAt:                time.Now(),
		Name:                     "Plain bread",
		Serves:                   4,
		PreparationTimeInMinutes: 90,
		Preparation:              "Mix the ingredients, knead, proof and bake.",
		Author:                   author,
		Ingredients:              lines,
	}
}

// CreateTestComment creates a comment entity by the given user on the given recipe
func CreateTestComment(t *testing.T, userID, recipeID string) *social.Comment {
	t.Helper()

	return &social.Comment{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		UserID:    userID,
		RecipeID:  recipeID,
		Content:   "Tried it, came out great.",
	}
}

// CreateTestLike creates a like entity by the given user on the given recipe
func CreateTestLike(t *testing.T, userID, recipeID string) *social.Like {
	t.Helper()

	return &social.Like{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		UserID:    userID,
		RecipeID:  recipeID,
	}
}

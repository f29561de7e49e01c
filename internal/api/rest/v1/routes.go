package v1

import (
	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/PHedro/recipes/internal/infrastructure/realtime"
	"github.com/PHedro/recipes/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes sets up all the API routes for version 1. Every route under
// the base path requires token authentication; the health check does not.
func SetupRoutes(r *gin.Engine,
	db *gorm.DB,
	authService accounts.AuthService,
	unitService recipes.UnitService,
	ingredientService recipes.IngredientService,
	recipeService recipes.RecipeService,
	commentService social.CommentService,
	likeService social.LikeService,
	notificationService social.NotificationService,
	hub *realtime.Hub,
	logger logger.Logger) {

	r.HandleMethodNotAllowed = true

	healthHandler := NewHealthHandler(db)
	r.GET("/health", healthHandler.Status)

	api := r.Group(BasePath) // lookup in version file
	api.Use(TokenAuthMiddleware(authService))

	// Unit Routes
	unitHandler := NewUnitHandler(unitService)
	api.GET("/units", unitHandler.List)
	api.POST("/units", unitHandler.Create)
	api.GET("/units/:id", unitHandler.GetById)
	api.PUT("/units/:id", unitHandler.UpdateById)
	api.PATCH("/units/:id", unitHandler.PatchById)
	api.DELETE("/units/:id", unitHandler.DeleteById)

	// Ingredient Routes
	ingredientHandler := NewIngredientHandler(ingredientService)
	api.GET("/ingredients", ingredientHandler.List)
	api.POST("/ingredients", ingredientHandler.Create)
	api.GET("/ingredients/:id", ingredientHandler.GetById)
	api.PUT("/ingredients/:id", ingredientHandler.UpdateById)
	api.PATCH("/ingredients/:id", ingredientHandler.PatchById)
	api.DELETE("/ingredients/:id", ingredientHandler.DeleteById)

	// Recipe Routes
	recipeHandler := NewRecipeHandler(recipeService)
	api.GET("/recipes", recipeHandler.List)
	api.POST("/recipes", recipeHandler.Create)
	api.GET("/recipes/:id", recipeHandler.GetById)
	api.PUT("/recipes/:id", recipeHandler.UpdateById)
	api.PATCH("/recipes/:id", recipeHandler.PatchById)
	api.DELETE("/recipes/:id", recipeHandler.DeleteById)

	// Comment Routes
	commentHandler := NewCommentHandler(commentService)
	api.GET("/comments", commentHandler.List)
	api.POST("/comments", commentHandler.Create)
	api.GET("/comments/:id", commentHandler.GetById)
	api.PUT("/comments/:id", commentHandler.UpdateById)
	api.PATCH("/comments/:id", commentHandler.UpdateById)
	api.DELETE("/comments/:id", commentHandler.DeleteById)

	// Like Routes, immutable so no update routes
	likeHandler := NewLikeHandler(likeService)
	api.GET("/likes", likeHandler.List)
	api.POST("/likes", likeHandler.Create)
	api.GET("/likes/:id", likeHandler.GetById)
	api.DELETE("/likes/:id", likeHandler.DeleteById)

	// Notification Routes
	notificationHandler := NewNotificationHandler(notificationService)
	api.GET("/notifications", notificationHandler.List)
	api.POST("/notifications/:id/read", notificationHandler.MarkReadById)

	// Feed Routes
	feedHandler := NewFeedHandler(hub, logger)
	api.GET("/feed/ws", feedHandler.Stream)
}

package v1

import (
	"fmt"
	"net/http"

	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/gin-gonic/gin"
)

// LikeHandler defines the methods for handling like endpoints in the API.
// Likes are immutable, so there is no update operation.
type LikeHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	GetById(ctx *gin.Context)
	DeleteById(ctx *gin.Context)
}

// likeHandler struct holds the service for managing likes
type likeHandler struct {
	likeService social.LikeService
}

// NewLikeHandler creates a new instance of likeHandler
func NewLikeHandler(likeService social.LikeService) LikeHandler {
	return &likeHandler{
		likeService: likeService,
	}
}

// List godoc
// @Summary List likes
// @Description Lists likes, newest first, optionally filtered by recipe, comment or liking user
// @Tags Like
// @Produce json
// @Param id query string false "Like ID"
// @Param recipe_id query string false "Recipe ID"
// @Param comment_id query string false "Comment ID"
// @Param user_id query string false "Liking user ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} PageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /likes [get]
func (handler *likeHandler) List(ctx *gin.Context) {
	page, pageSize, ok := pageParams(ctx)
	if !ok {
		var errorResponse ErrorResponse
		errorResponse.Message = "invalid page"
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	query := social.NewLikeQuery()
	query.Page = page
	query.PageSize = pageSize
	if id := ctx.Query("id"); len(id) > 0 {
		query.ID = id
	}
	if recipeID := ctx.Query("recipe_id"); len(recipeID) > 0 {
		query.RecipeID = recipeID
	}
	if commentID := ctx.Query("comment_id"); len(commentID) > 0 {
		query.CommentID = commentID
	}
	if userID := ctx.Query("user_id"); len(userID) > 0 {
		query.UserID = userID
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	likes, total, err := handler.likeService.List(ctx.Request.Context(), query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	if invalidPage(page, pageSize, total) {
		var errorResponse ErrorResponse
		errorResponse.Message = "invalid page"
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	results := make([]LikeResponse, 0, len(likes))
	for _, like := range likes {
		results = append(results, newLikeResponse(like))
	}

	ctx.JSON(http.StatusOK, newPageResponse(ctx, page, pageSize, total, results))
}

// Create godoc
// @Summary Like a recipe or comment
// @Description Creates a like by the authenticated user on a recipe, or on one of its comments when comment_id is set
// @Tags Like
// @Accept json
// @Produce json
// @Param like body CreateLikeRequest true "Like to create"
// @Success 201 {object} LikeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /likes [post]
func (handler *likeHandler) Create(ctx *gin.Context) {
	user := CurrentUser(ctx)
	if user == nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "authentication credentials were not provided"
		ctx.JSON(http.StatusUnauthorized, errorResponse)
		return
	}

	var createLikeRequest CreateLikeRequest
	if err := ctx.ShouldBindJSON(&createLikeRequest); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid like data: %v", err)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := createLikeRequest.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	input := &social.LikeInput{
		UserID:    user.ID,
		RecipeID:  createLikeRequest.RecipeID,
		CommentID: createLikeRequest.CommentID,
	}

	like, err := handler.likeService.Create(ctx.Request.Context(), input)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(createStatusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newLikeResponse(like))
}

// GetById godoc
// @Summary Get a like
// @Description Retrieves a like by its ID
// @Tags Like
// @Produce json
// @Param id path string true "Like ID"
// @Success 200 {object} LikeResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /likes/{id} [get]
func (handler *likeHandler) GetById(ctx *gin.Context) {
	likeID := ctx.Param("id")

	like, err := handler.likeService.GetByID(ctx.Request.Context(), likeID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newLikeResponse(like))
}

// DeleteById godoc
// @Summary Delete a like
// @Description Deletes a like, taking it back
// @Tags Like
// @Param id path string true "Like ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /likes/{id} [delete]
func (handler *likeHandler) DeleteById(ctx *gin.Context) {
	likeID := ctx.Param("id")

	if err := handler.likeService.DeleteByID(ctx.Request.Context(), likeID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}

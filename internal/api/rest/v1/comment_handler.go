package v1

import (
	"fmt"
	"net/http"

	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/gin-gonic/gin"
)

// CommentHandler defines the methods for handling comment endpoints in the API
type CommentHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	GetById(ctx *gin.Context)
	UpdateById(ctx *gin.Context)
	DeleteById(ctx *gin.Context)
}

// commentHandler struct holds the service for managing comments
type commentHandler struct {
	commentService social.CommentService
}

// NewCommentHandler creates a new instance of commentHandler
func NewCommentHandler(commentService social.CommentService) CommentHandler {
	return &commentHandler{
		commentService: commentService,
	}
}

// List godoc
// @Summary List comments
// @Description Lists comments, newest first, optionally filtered by recipe or commenting user
// @Tags Comment
// @Produce json
// @Param id query string false "Comment ID"
// @Param recipe_id query string false "Recipe ID"
// @Param user_id query string false "Commenting user ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} PageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /comments [get]
func (handler *commentHandler) List(ctx *gin.Context) {
	page, pageSize, ok := pageParams(ctx)
	if !ok {
		var errorResponse ErrorResponse
		errorResponse.Message = "invalid page"
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	query := social.NewCommentQuery()
	query.Page = page
	query.PageSize = pageSize
	if id := ctx.Query("id"); len(id) > 0 {
		query.ID = id
	}
	if recipeID := ctx.Query("recipe_id"); len(recipeID) > 0 {
		query.RecipeID = recipeID
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

	comments, total, err := handler.commentService.List(ctx.Request.Context(), query)
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

	results := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		results = append(results, newCommentResponse(comment))
	}

	ctx.JSON(http.StatusOK, newPageResponse(ctx, page, pageSize, total, results))
}

// Create godoc
// @Summary Comment on a recipe
// @Description Creates a comment by the authenticated user, optionally replying to another comment of the same recipe
// @Tags Comment
// @Accept json
// @Produce json
// @Param comment body CreateCommentRequest true "Comment to create"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /comments [post]
func (handler *commentHandler) Create(ctx *gin.Context) {
	user := CurrentUser(ctx)
	if user == nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "authentication credentials were not provided"
		ctx.JSON(http.StatusUnauthorized, errorResponse)
		return
	}

	var createCommentRequest CreateCommentRequest
	if err := ctx.ShouldBindJSON(&createCommentRequest); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid comment data: %v", err)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := createCommentRequest.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	input := &social.CommentInput{
		UserID:      user.ID,
		RecipeID:    createCommentRequest.RecipeID,
		InReplyToID: createCommentRequest.InReplyToID,
		Content:     createCommentRequest.Content,
	}

	comment, err := handler.commentService.Create(ctx.Request.Context(), input)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(createStatusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newCommentResponse(comment))
}

// GetById godoc
// @Summary Get a comment
// @Description Retrieves a comment by its ID
// @Tags Comment
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} CommentResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /comments/{id} [get]
func (handler *commentHandler) GetById(ctx *gin.Context) {
	commentID := ctx.Param("id")

	comment, err := handler.commentService.GetByID(ctx.Request.Context(), commentID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newCommentResponse(comment))
}

// UpdateById godoc
// @Summary Update a comment
// @Description Replaces the content of a comment; the remaining comment fields are immutable
// @Tags Comment
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param comment body UpdateCommentRequest true "New comment content"
// @Success 200 {object} CommentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /comments/{id} [put]
func (handler *commentHandler) UpdateById(ctx *gin.Context) {
	commentID := ctx.Param("id")

	var updateCommentRequest UpdateCommentRequest
	if err := ctx.ShouldBindJSON(&updateCommentRequest); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid comment data: %v", err)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := updateCommentRequest.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	comment, err := handler.commentService.UpdateContentByID(ctx.Request.Context(), commentID, updateCommentRequest.Content)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newCommentResponse(comment))
}

// DeleteById godoc
// @Summary Delete a comment
// @Description Deletes a comment that has no replies or likes
// @Tags Comment
// @Param id path string true "Comment ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /comments/{id} [delete]
func (handler *commentHandler) DeleteById(ctx *gin.Context) {
	commentID := ctx.Param("id")

	if err := handler.commentService.DeleteByID(ctx.Request.Context(), commentID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}

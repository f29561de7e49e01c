package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/gin-gonic/gin"
)

// RecipeHandler defines the methods for handling recipe endpoints in the API
type RecipeHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	GetById(ctx *gin.Context)
	UpdateById(ctx *gin.Context)
	PatchById(ctx *gin.Context)
	DeleteById(ctx *gin.Context)
}

// recipeHandler struct holds the service for managing recipes
type recipeHandler struct {
	recipeService recipes.RecipeService
}

// NewRecipeHandler creates a new instance of recipeHandler
func NewRecipeHandler(recipeService recipes.RecipeService) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
	}
}

// List godoc
// @Summary List recipes
// @Description Lists recipes with their authors and ingredient lines, newest first
// @Tags Recipe
// @Produce json
// @Param id query string false "Recipe ID"
// @Param name query string false "Exact recipe name"
// @Param serves query int false "Exact number of servings"
// @Param preparation_time_in_minutes query int false "Exact preparation time"
// @Param author_id query string false "Author user ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} PageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes [get]
func (handler *recipeHandler) List(ctx *gin.Context) {
	page, pageSize, ok := pageParams(ctx)
	if !ok {
		var errorResponse ErrorResponse
		errorResponse.Message = "invalid page"
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	query := recipes.NewRecipeQuery()
	query.Page = page
	query.PageSize = pageSize
	if id := ctx.Query("id"); len(id) > 0 {
		query.ID = id
	}
	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}
	if raw := ctx.Query("serves"); len(raw) > 0 {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			query.Serves = uint(parsed)
		}
	}
	if raw := ctx.Query("preparation_time_in_minutes"); len(raw) > 0 {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			query.PreparationTimeInMinutes = uint(parsed)
		}
	}
	if authorID := ctx.Query("author_id"); len(authorID) > 0 {
		query.AuthorID = authorID
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	foundRecipes, total, err := handler.recipeService.List(ctx.Request.Context(), query)
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

	results := make([]RecipeResponse, 0, len(foundRecipes))
	for _, recipe := range foundRecipes {
		results = append(results, newRecipeResponse(recipe))
	}

	ctx.JSON(http.StatusOK, newPageResponse(ctx, page, pageSize, total, results))
}

// Create godoc
// @Summary Create a recipe
// @Description Creates a recipe, resolving the nested author, ingredient and unit references of the payload
// @Tags Recipe
// @Accept json
// @Produce json
// @Param recipe body CreateRecipeRequest true "Recipe to create"
// @Success 201 {object} RecipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes [post]
func (handler *recipeHandler) Create(ctx *gin.Context) {
	var createRecipeRequest CreateRecipeRequest
	if err := ctx.ShouldBindJSON(&createRecipeRequest); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid recipe data: %v", err)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := createRecipeRequest.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	recipe, err := handler.recipeService.Create(ctx.Request.Context(), createRecipeRequest.toInput())
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(createStatusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newRecipeResponse(recipe))
}

// GetById godoc
// @Summary Get a recipe
// @Description Retrieves a recipe with its author and ingredient lines by its ID
// @Tags Recipe
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} RecipeResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/{id} [get]
func (handler *recipeHandler) GetById(ctx *gin.Context) {
	recipeID := ctx.Param("id")

	recipe, err := handler.recipeService.GetByID(ctx.Request.Context(), recipeID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newRecipeResponse(recipe))
}

// UpdateById godoc
// @Summary Update a recipe
// @Description Replaces the recipe fields and its ingredient line set with the payload
// @Tags Recipe
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param recipe body CreateRecipeRequest true "Replacement recipe fields"
// @Success 200 {object} RecipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/{id} [put]
func (handler *recipeHandler) UpdateById(ctx *gin.Context) {
	recipeID := ctx.Param("id")

	var updateRecipeRequest CreateRecipeRequest
	if err := ctx.ShouldBindJSON(&updateRecipeRequest); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid recipe data: %v", err)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := updateRecipeRequest.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	recipe, err := handler.recipeService.UpdateByID(ctx.Request.Context(), recipeID, updateRecipeRequest.toInput())
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newRecipeResponse(recipe))
}

// PatchById godoc
// @Summary Partially update a recipe
// @Description Updates only the recipe fields present in the payload; an ingredients array replaces the line set wholesale
// @Tags Recipe
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param recipe body PatchRecipeRequest true "Recipe fields to update"
// @Success 200 {object} RecipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/{id} [patch]
func (handler *recipeHandler) PatchById(ctx *gin.Context) {
	recipeID := ctx.Param("id")

	var patchRecipeRequest PatchRecipeRequest
	if err := ctx.ShouldBindJSON(&patchRecipeRequest); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid recipe data: %v", err)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := patchRecipeRequest.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	recipe, err := handler.recipeService.PatchByID(ctx.Request.Context(), recipeID, patchRecipeRequest.toPatch())
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newRecipeResponse(recipe))
}

// DeleteById godoc
// @Summary Delete a recipe
// @Description Deletes a recipe together with its ingredient lines
// @Tags Recipe
// @Param id path string true "Recipe ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/{id} [delete]
func (handler *recipeHandler) DeleteById(ctx *gin.Context) {
	recipeID := ctx.Param("id")

	if err := handler.recipeService.DeleteByID(ctx.Request.Context(), recipeID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}

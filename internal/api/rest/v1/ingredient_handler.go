package v1

import (
	"fmt"
	"net/http"

	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/gin-gonic/gin"
)

// IngredientHandler defines the methods for handling ingredient endpoints in the API
type IngredientHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	GetById(ctx *gin.Context)
	UpdateById(ctx *gin.Context)
	PatchById(ctx *gin.Context)
	DeleteById(ctx *gin.Context)
}

// ingredientHandler struct holds the service for managing ingredients
type ingredientHandler struct {
	ingredientService recipes.IngredientService
}

// NewIngredientHandler creates a new instance of ingredientHandler
func NewIngredientHandler(ingredientService recipes.IngredientService) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
	}
}

// List godoc
// @Summary List ingredients
// @Description Lists ingredients ordered by name, optionally filtered by exact name
// @Tags Ingredient
// @Produce json
// @Param id query string false "Ingredient ID"
// @Param name query string false "Exact ingredient name"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} PageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ingredients [get]
func (handler *ingredientHandler) List(ctx *gin.Context) {
	page, pageSize, ok := pageParams(ctx)
	if !ok {
		var errorResponse ErrorResponse
		errorResponse.Message = "invalid page"
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	query := recipes.NewIngredientQuery()
	query.Page = page
	query.PageSize = pageSize
	if id := ctx.Query("id"); len(id) > 0 {
		query.ID = id
	}
	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ingredients, total, err := handler.ingredientService.List(ctx.Request.Context(), query)
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

	results := make([]IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		results = append(results, newIngredientResponse(ingredient))
	}

	ctx.JSON(http.StatusOK, newPageResponse(ctx, page, pageSize, total, results))
}

// Create godoc
// @Summary Create an ingredient
// @Description Creates an ingredient with a unique name
// @Tags Ingredient
// @Accept json
// @Produce json
// @Param ingredient body CreateIngredientRequest true "Ingredient to create"
// @Success 201 {object} IngredientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ingredients [post]
func (handler *ingredientHandler) Create(ctx *gin.Context) {
	var createIngredientRequest CreateIngredientRequest
	if err := ctx.ShouldBindJSON(&createIngredientRequest); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid ingredient data: %v", err)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := createIngredientRequest.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ingredient, err := handler.ingredientService.Create(ctx.Request.Context(), createIngredientRequest.Name)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(createStatusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newIngredientResponse(ingredient))
}

// GetById godoc
// @Summary Get an ingredient
// @Description Retrieves an ingredient by its ID
// @Tags Ingredient
// @Produce json
// @Param id path string true "Ingredient ID"
// @Success 200 {object} IngredientResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ingredients/{id} [get]
func (handler *ingredientHandler) GetById(ctx *gin.Context) {
	ingredientID := ctx.Param("id")

	ingredient, err := handler.ingredientService.GetByID(ctx.Request.Context(), ingredientID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newIngredientResponse(ingredient))
}

// UpdateById godoc
// @Summary Update an ingredient
// @Description Replaces every field of an ingredient
// @Tags Ingredient
// @Accept json
// @Produce json
// @Param id path string true "Ingredient ID"
// @Param ingredient body CreateIngredientRequest true "Replacement ingredient fields"
// @Success 200 {object} IngredientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ingredients/{id} [put]
func (handler *ingredientHandler) UpdateById(ctx *gin.Context) {
	ingredientID := ctx.Param("id")

	var updateIngredientRequest CreateIngredientRequest
	if err := ctx.ShouldBindJSON(&updateIngredientRequest); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid ingredient data: %v", err)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := updateIngredientRequest.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ingredient, err := handler.ingredientService.UpdateByID(ctx.Request.Context(), ingredientID, updateIngredientRequest.Name)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newIngredientResponse(ingredient))
}

// PatchById godoc
// @Summary Partially update an ingredient
// @Description Updates only the ingredient fields present in the payload
// @Tags Ingredient
// @Accept json
// @Produce json
// @Param id path string true "Ingredient ID"
// @Param ingredient body PatchIngredientRequest true "Ingredient fields to update"
// @Success 200 {object} IngredientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ingredients/{id} [patch]
func (handler *ingredientHandler) PatchById(ctx *gin.Context) {
	ingredientID := ctx.Param("id")

	var patchIngredientRequest PatchIngredientRequest
	if err := ctx.ShouldBindJSON(&patchIngredientRequest); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid ingredient data: %v", err)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := patchIngredientRequest.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	patch := &recipes.IngredientPatch{
		Name: patchIngredientRequest.Name,
	}

	ingredient, err := handler.ingredientService.PatchByID(ctx.Request.Context(), ingredientID, patch)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newIngredientResponse(ingredient))
}

// DeleteById godoc
// @Summary Delete an ingredient
// @Description Deletes an ingredient that no recipe ingredient line references
// @Tags Ingredient
// @Param id path string true "Ingredient ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ingredients/{id} [delete]
func (handler *ingredientHandler) DeleteById(ctx *gin.Context) {
	ingredientID := ctx.Param("id")

	if err := handler.ingredientService.DeleteByID(ctx.Request.Context(), ingredientID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}

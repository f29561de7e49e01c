package v1

import (
	"fmt"
	"net/http"

	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/gin-gonic/gin"
)

// UnitHandler defines the methods for handling measurement unit endpoints in the API
type UnitHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	GetById(ctx *gin.Context)
	UpdateById(ctx *gin.Context)
	PatchById(ctx *gin.Context)
	DeleteById(ctx *gin.Context)
}

// unitHandler struct holds the service for managing measurement units
type unitHandler struct {
	unitService recipes.UnitService
}

// NewUnitHandler creates a new instance of unitHandler
func NewUnitHandler(unitService recipes.UnitService) UnitHandler {
	return &unitHandler{
		unitService: unitService,
	}
}

// List godoc
// @Summary List measurement units
// @Description Lists measurement units ordered by name, optionally filtered by exact name
// @Tags Unit
// @Produce json
// @Param id query string false "Unit ID"
// @Param name query string false "Exact unit name"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} PageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /units [get]
func (handler *unitHandler) List(ctx *gin.Context) {
	page, pageSize, ok := pageParams(ctx)
	if !ok {
		var errorResponse ErrorResponse
		errorResponse.Message = "invalid page"
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	query := recipes.NewUnitQuery()
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

	units, total, err := handler.unitService.List(ctx.Request.Context(), query)
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

	results := make([]UnitResponse, 0, len(units))
	for _, unit := range units {
		results = append(results, newUnitResponse(unit))
	}

	ctx.JSON(http.StatusOK, newPageResponse(ctx, page, pageSize, total, results))
}

// Create godoc
// @Summary Create a measurement unit
// @Description Creates a measurement unit with a unique name
// @Tags Unit
// @Accept json
// @Produce json
// @Param unit body CreateUnitRequest true "Unit to create"
// @Success 201 {object} UnitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /units [post]
func (handler *unitHandler) Create(ctx *gin.Context) {
	var createUnitRequest CreateUnitRequest
	if err := ctx.ShouldBindJSON(&createUnitRequest); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid unit data: %v", err)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := createUnitRequest.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	unit, err := handler.unitService.Create(ctx.Request.Context(), createUnitRequest.Name, createUnitRequest.Abbreviation)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(createStatusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newUnitResponse(unit))
}

// GetById godoc
// @Summary Get a measurement unit
// @Description Retrieves a measurement unit by its ID
// @Tags Unit
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} UnitResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /units/{id} [get]
func (handler *unitHandler) GetById(ctx *gin.Context) {
	unitID := ctx.Param("id")

	unit, err := handler.unitService.GetByID(ctx.Request.Context(), unitID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newUnitResponse(unit))
}

// UpdateById godoc
// @Summary Update a measurement unit
// @Description Replaces every field of a measurement unit
// @Tags Unit
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Param unit body CreateUnitRequest true "Replacement unit fields"
// @Success 200 {object} UnitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /units/{id} [put]
func (handler *unitHandler) UpdateById(ctx *gin.Context) {
	unitID := ctx.Param("id")

	var updateUnitRequest CreateUnitRequest
	if err := ctx.ShouldBindJSON(&updateUnitRequest); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid unit data: %v", err)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := updateUnitRequest.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	unit, err := handler.unitService.UpdateByID(ctx.Request.Context(), unitID, updateUnitRequest.Name, updateUnitRequest.Abbreviation)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newUnitResponse(unit))
}

// PatchById godoc
// @Summary Partially update a measurement unit
// @Description Updates only the unit fields present in the payload
// @Tags Unit
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Param unit body PatchUnitRequest true "Unit fields to update"
// @Success 200 {object} UnitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /units/{id} [patch]
func (handler *unitHandler) PatchById(ctx *gin.Context) {
	unitID := ctx.Param("id")

	var patchUnitRequest PatchUnitRequest
	if err := ctx.ShouldBindJSON(&patchUnitRequest); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid unit data: %v", err)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := patchUnitRequest.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	patch := &recipes.UnitPatch{
		Name:         patchUnitRequest.Name,
		Abbreviation: patchUnitRequest.Abbreviation,
	}

	unit, err := handler.unitService.PatchByID(ctx.Request.Context(), unitID, patch)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newUnitResponse(unit))
}

// DeleteById godoc
// @Summary Delete a measurement unit
// @Description Deletes a measurement unit that no recipe ingredient line references
// @Tags Unit
// @Param id path string true "Unit ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /units/{id} [delete]
func (handler *unitHandler) DeleteById(ctx *gin.Context) {
	unitID := ctx.Param("id")

	if err := handler.unitService.DeleteByID(ctx.Request.Context(), unitID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}

//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testUnit(name, abbreviation string) *recipes.Unit {
	return &recipes.Unit{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		Name:         name,
		Abbreviation: abbreviation,
	}
}

// unitPage mirrors the pagination envelope with typed results.
type unitPage struct {
	Count    int64          `json:"count"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []UnitResponse `json:"results"`
}

func TestUnitHandler_List_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockUnitService)
	handler := NewUnitHandler(mockService)

	units := []*recipes.Unit{testUnit("gram", "g"), testUnit("liter", "l")}
	mockService.On("List", mock.Anything, mock.Anything).Return(units, int64(2), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "http://example.com/api/units", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var page unitPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(2), page.Count)
	assert.Nil(t, page.Next)
	assert.Nil(t, page.Previous)
	assert.Len(t, page.Results, 2)
	assert.Equal(t, "gram", page.Results[0].Name)
	mockService.AssertExpectations(t)
}

func TestUnitHandler_List_PageLinks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockUnitService)
	handler := NewUnitHandler(mockService)

	units := []*recipes.Unit{testUnit("gram", "g")}
	mockService.On("List", mock.Anything, mock.MatchedBy(func(query *recipes.UnitQuery) bool {
		return query.Page == 2 && query.PageSize == 10
	})).Return(units, int64(25), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "http://example.com/api/units?page=2", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var page unitPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.NotNil(t, page.Next)
	require.NotNil(t, page.Previous)
	assert.Equal(t, "http://example.com/api/units?page=3", *page.Next)
	// The previous link of page 2 is the bare first-page URL.
	assert.Equal(t, "http://example.com/api/units", *page.Previous)
	mockService.AssertExpectations(t)
}

func TestUnitHandler_List_InvalidPageParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockUnitService)
	handler := NewUnitHandler(mockService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "http://example.com/api/units?page=zero", nil)

	handler.List(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorResponse))
	assert.Equal(t, "invalid page", errorResponse.Message)
	mockService.AssertNotCalled(t, "List")
}

func TestUnitHandler_List_PageBeyondResults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockUnitService)
	handler := NewUnitHandler(mockService)

	mockService.On("List", mock.Anything, mock.Anything).Return([]*recipes.Unit{}, int64(3), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "http://example.com/api/units?page=9", nil)

	handler.List(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorResponse))
	assert.Equal(t, "invalid page", errorResponse.Message)
}

func TestUnitHandler_Create_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockUnitService)
	handler := NewUnitHandler(mockService)

	unit := testUnit("gram", "g")
	mockService.On("Create", mock.Anything, "gram", "g").Return(unit, nil)

	body, err := json.Marshal(CreateUnitRequest{Name: "gram", Abbreviation: "g"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "http://example.com/api/units", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response UnitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, unit.ID, response.ID)
	assert.Equal(t, "gram", response.Name)
	mockService.AssertExpectations(t)
}

func TestUnitHandler_Create_ValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockUnitService)
	handler := NewUnitHandler(mockService)

	body, err := json.Marshal(CreateUnitRequest{Name: "gram"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "http://example.com/api/units", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestUnitHandler_Create_DuplicateName(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockUnitService)
	handler := NewUnitHandler(mockService)

	mockService.On("Create", mock.Anything, "gram", "g").Return(nil, recipes.ErrDuplicate)

	body, err := json.Marshal(CreateUnitRequest{Name: "gram", Abbreviation: "g"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "http://example.com/api/units", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestUnitHandler_GetById_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockUnitService)
	handler := NewUnitHandler(mockService)

	unitID := uuid.NewString()
	mockService.On("GetByID", mock.Anything, unitID).Return(nil, recipes.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "http://example.com/api/units/"+unitID, nil)
	c.Params = gin.Params{{Key: "id", Value: unitID}}

	handler.GetById(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestUnitHandler_PatchById_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockUnitService)
	handler := NewUnitHandler(mockService)

	unit := testUnit("kilogram", "kg")
	mockService.On("PatchByID", mock.Anything, unit.ID, mock.MatchedBy(func(patch *recipes.UnitPatch) bool {
		return patch.Name != nil && *patch.Name == "kilogram" && patch.Abbreviation == nil
	})).Return(unit, nil)

	body := []byte(`{"name": "kilogram"}`)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "http://example.com/api/units/"+unit.ID, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: unit.ID}}

	handler.PatchById(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestUnitHandler_DeleteById_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockUnitService)
	handler := NewUnitHandler(mockService)

	unitID := uuid.NewString()
	mockService.On("DeleteByID", mock.Anything, unitID).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "http://example.com/api/units/"+unitID, nil)
	c.Params = gin.Params{{Key: "id", Value: unitID}}

	handler.DeleteById(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())
	mockService.AssertExpectations(t)
}

func TestUnitHandler_DeleteById_StillReferenced(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockUnitService)
	handler := NewUnitHandler(mockService)

	unitID := uuid.NewString()
	mockService.On("DeleteByID", mock.Anything, unitID).Return(recipes.ErrProtected)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "http://example.com/api/units/"+unitID, nil)
	c.Params = gin.Params{{Key: "id", Value: unitID}}

	handler.DeleteById(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertExpectations(t)
}

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

	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLike(userID, recipeID string) *social.Like {
	now := time.Now()
	return &social.Like{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    userID,
		RecipeID:  recipeID,
	}
}

func TestLikeHandler_Create_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockLikeService)
	handler := NewLikeHandler(mockService)

	caller := testCaller()
	recipeID := uuid.NewString()
	like := testLike(caller.ID, recipeID)

	mockService.On("Create", mock.Anything, mock.MatchedBy(func(input *social.LikeInput) bool {
		return input.UserID == caller.ID && input.RecipeID == recipeID && input.CommentID == nil
	})).Return(like, nil)

	body, err := json.Marshal(CreateLikeRequest{RecipeID: recipeID})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "http://example.com/api/likes", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(ContextUserKey, caller)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response LikeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, caller.ID, response.UserID)
	assert.Nil(t, response.CommentID)
	mockService.AssertExpectations(t)
}

func TestLikeHandler_Create_WithoutUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockLikeService)
	handler := NewLikeHandler(mockService)

	body, err := json.Marshal(CreateLikeRequest{RecipeID: uuid.NewString()})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "http://example.com/api/likes", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestLikeHandler_Create_CommentOfOtherRecipe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockLikeService)
	handler := NewLikeHandler(mockService)

	mockService.On("Create", mock.Anything, mock.Anything).Return(nil, social.ErrCrossRecipe)

	commentID := uuid.NewString()
	body, err := json.Marshal(CreateLikeRequest{RecipeID: uuid.NewString(), CommentID: &commentID})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "http://example.com/api/likes", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(ContextUserKey, testCaller())

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestLikeHandler_List_FiltersByComment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockLikeService)
	handler := NewLikeHandler(mockService)

	commentID := uuid.NewString()
	mockService.On("List", mock.Anything, mock.MatchedBy(func(query *social.LikeQuery) bool {
		return query.CommentID == commentID
	})).Return([]*social.Like{}, int64(0), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "http://example.com/api/likes?comment_id="+commentID, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestLikeHandler_DeleteById_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockLikeService)
	handler := NewLikeHandler(mockService)

	likeID := uuid.NewString()
	mockService.On("DeleteByID", mock.Anything, likeID).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "http://example.com/api/likes/"+likeID, nil)
	c.Params = gin.Params{{Key: "id", Value: likeID}}

	handler.DeleteById(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())
	mockService.AssertExpectations(t)
}

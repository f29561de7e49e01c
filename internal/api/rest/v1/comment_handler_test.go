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

	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCaller() *accounts.User {
	return &accounts.User{
		ID:       uuid.NewString(),
		Username: "taster",
		Email:    "taster@example.com",
	}
}

func testComment(userID, recipeID string) *social.Comment {
	now := time.Now()
	return &social.Comment{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    userID,
		RecipeID:  recipeID,
		Content:   "Tried it, came out great.",
	}
}

func TestCommentHandler_Create_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockCommentService)
	handler := NewCommentHandler(mockService)

	caller := testCaller()
	recipeID := uuid.NewString()
	comment := testComment(caller.ID, recipeID)

	mockService.On("Create", mock.Anything, mock.MatchedBy(func(input *social.CommentInput) bool {
		return input.UserID == caller.ID && input.RecipeID == recipeID && input.InReplyToID == nil
	})).Return(comment, nil)

	body, err := json.Marshal(CreateCommentRequest{RecipeID: recipeID, Content: "Tried it, came out great."})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "http://example.com/api/comments", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(ContextUserKey, caller)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response CommentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, caller.ID, response.UserID)
	assert.Equal(t, recipeID, response.RecipeID)
	mockService.AssertExpectations(t)
}

func TestCommentHandler_Create_MissingRecipeIsBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockCommentService)
	handler := NewCommentHandler(mockService)

	// A recipe referenced by the payload is not a URL resource, so its
	// absence renders as 400, not 404.
	mockService.On("Create", mock.Anything, mock.Anything).Return(nil, social.ErrNotFound)

	body, err := json.Marshal(CreateCommentRequest{RecipeID: uuid.NewString(), Content: "Lovely"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "http://example.com/api/comments", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(ContextUserKey, testCaller())

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestCommentHandler_Create_ReplyAcrossRecipes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockCommentService)
	handler := NewCommentHandler(mockService)

	mockService.On("Create", mock.Anything, mock.Anything).Return(nil, social.ErrCrossRecipe)

	parentID := uuid.NewString()
	body, err := json.Marshal(CreateCommentRequest{
		RecipeID:    uuid.NewString(),
		InReplyToID: &parentID,
		Content:     "Agreed",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "http://example.com/api/comments", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(ContextUserKey, testCaller())

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestCommentHandler_List_FiltersByRecipe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockCommentService)
	handler := NewCommentHandler(mockService)

	recipeID := uuid.NewString()
	comments := []*social.Comment{testComment(uuid.NewString(), recipeID)}
	mockService.On("List", mock.Anything, mock.MatchedBy(func(query *social.CommentQuery) bool {
		return query.RecipeID == recipeID
	})).Return(comments, int64(1), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "http://example.com/api/comments?recipe_id="+recipeID, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestCommentHandler_UpdateById_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockCommentService)
	handler := NewCommentHandler(mockService)

	comment := testComment(uuid.NewString(), uuid.NewString())
	comment.Content = "Even better the second time."
	mockService.On("UpdateContentByID", mock.Anything, comment.ID, "Even better the second time.").Return(comment, nil)

	body, err := json.Marshal(UpdateCommentRequest{Content: "Even better the second time."})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "http://example.com/api/comments/"+comment.ID, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: comment.ID}}

	handler.UpdateById(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response CommentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Even better the second time.", response.Content)
	mockService.AssertExpectations(t)
}

func TestCommentHandler_UpdateById_MissingContent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockCommentService)
	handler := NewCommentHandler(mockService)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "http://example.com/api/comments/"+uuid.NewString(), bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}

	handler.UpdateById(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "UpdateContentByID")
}

func TestCommentHandler_DeleteById_StillReferenced(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockCommentService)
	handler := NewCommentHandler(mockService)

	commentID := uuid.NewString()
	mockService.On("DeleteByID", mock.Anything, commentID).Return(social.ErrProtected)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "http://example.com/api/comments/"+commentID, nil)
	c.Params = gin.Params{{Key: "id", Value: commentID}}

	handler.DeleteById(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertExpectations(t)
}

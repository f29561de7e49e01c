//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageParams(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantPage     int
		wantPageSize int
		wantOk       bool
	}{
		{"Defaults", "/api/units", 1, 10, true},
		{"Explicit page and size", "/api/units?page=3&page_size=25", 3, 25, true},
		{"Size capped at maximum", "/api/units?page_size=1000", 1, 100, true},
		{"Bad size falls back", "/api/units?page_size=lots", 1, 10, true},
		{"Negative size falls back", "/api/units?page_size=-5", 1, 10, true},
		{"Zero page rejected", "/api/units?page=0", 0, 0, false},
		{"Non-numeric page rejected", "/api/units?page=last", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "http://example.com"+tt.target, nil)

			page, pageSize, ok := pageParams(c)

			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.wantPage, page)
				assert.Equal(t, tt.wantPageSize, pageSize)
			}
		})
	}
}

func TestInvalidPage(t *testing.T) {
	assert.False(t, invalidPage(1, 10, 0), "first page of an empty set is valid")
	assert.False(t, invalidPage(3, 10, 21))
	assert.False(t, invalidPage(3, 10, 25))
	assert.True(t, invalidPage(3, 10, 20), "page starting exactly at the total is out of range")
	assert.True(t, invalidPage(2, 10, 5))
}

func newPageTestContext(t *testing.T, target string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestNewPageResponse_FirstPage(t *testing.T) {
	c := newPageTestContext(t, "http://example.com/api/units")

	response := newPageResponse(c, 1, 5, 12, []UnitResponse{})

	assert.Equal(t, int64(12), response.Count)
	require.NotNil(t, response.Next)
	assert.Equal(t, "http://example.com/api/units?page=2", *response.Next)
	assert.Nil(t, response.Previous)
}

func TestNewPageResponse_MiddlePageKeepsOtherParams(t *testing.T) {
	c := newPageTestContext(t, "http://example.com/api/units?name=gram&page=2&page_size=5")

	response := newPageResponse(c, 2, 5, 12, []UnitResponse{})

	require.NotNil(t, response.Next)
	require.NotNil(t, response.Previous)
	assert.Equal(t, "http://example.com/api/units?name=gram&page=3&page_size=5", *response.Next)
	// Back to page 1 the page param disappears, as in the original envelope.
	assert.Equal(t, "http://example.com/api/units?name=gram&page_size=5", *response.Previous)
}

func TestNewPageResponse_LastPage(t *testing.T) {
	c := newPageTestContext(t, "http://example.com/api/units?page=3")

	response := newPageResponse(c, 3, 5, 12, []UnitResponse{})

	assert.Nil(t, response.Next)
	require.NotNil(t, response.Previous)
	assert.Equal(t, "http://example.com/api/units?page=2", *response.Previous)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Catalog not found", recipes.ErrNotFound, http.StatusNotFound},
		{"Account not found", accounts.ErrNotFound, http.StatusNotFound},
		{"Social not found", social.ErrNotFound, http.StatusNotFound},
		{"Wrapped not found", fmt.Errorf("unit with ID x: %w", recipes.ErrNotFound), http.StatusNotFound},
		{"Duplicate", recipes.ErrDuplicate, http.StatusBadRequest},
		{"Bad reference", recipes.ErrBadReference, http.StatusBadRequest},
		{"Cross recipe", social.ErrCrossRecipe, http.StatusBadRequest},
		{"Protected", recipes.ErrProtected, http.StatusConflict},
		{"Social protected", social.ErrProtected, http.StatusConflict},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestCreateStatusFromError_DowngradesNotFound(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, createStatusFromError(social.ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, createStatusFromError(fmt.Errorf("recipe: %w", recipes.ErrNotFound)))
	assert.Equal(t, http.StatusConflict, createStatusFromError(social.ErrProtected))
	assert.Equal(t, http.StatusInternalServerError, createStatusFromError(errors.New("boom")))
}

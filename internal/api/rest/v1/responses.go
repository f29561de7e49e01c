package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/gin-gonic/gin"
)

// PageResponse is the envelope every list endpoint renders: the total row
// count, absolute next/previous page links and the rows of the current page.
type PageResponse struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// pageParams reads the page and page_size query parameters. page must be a
// positive integer when present; ok reports false otherwise, which handlers
// render as an invalid-page 404. A bad page_size falls back to the default.
func pageParams(ctx *gin.Context) (page, pageSize int, ok bool) {
	page = 1
	if raw := ctx.Query("page"); len(raw) > 0 {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return 0, 0, false
		}
		page = parsed
	}

	pageSize = recipes.DefaultPageSize
	if raw := ctx.Query("page_size"); len(raw) > 0 {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			pageSize = parsed
			if pageSize > recipes.MaxPageSize {
				pageSize = recipes.MaxPageSize
			}
		}
	}

	return page, pageSize, true
}

// invalidPage reports whether the requested page starts beyond the result
// set. The first page is always in range, even when the set is empty.
func invalidPage(page, pageSize int, total int64) bool {
	return page > 1 && int64(page-1)*int64(pageSize) >= total
}

// newPageResponse wraps one page of results in the pagination envelope. The
// next and previous links are absolute URLs rebuilt from the request, with
// the page parameter dropped entirely when the previous page is the first.
func newPageResponse(ctx *gin.Context, page, pageSize int, total int64, results interface{}) PageResponse {
	response := PageResponse{Count: total, Results: results}

	scheme := "http"
	if ctx.Request.TLS != nil {
		scheme = "https"
	}
	base := scheme + "://" + ctx.Request.Host + ctx.Request.URL.Path

	if int64(page)*int64(pageSize) < total {
		query := ctx.Request.URL.Query()
		query.Set("page", strconv.Itoa(page+1))
		next := base + "?" + query.Encode()
		response.Next = &next
	}

	if page > 1 {
		query := ctx.Request.URL.Query()
		if page == 2 {
			query.Del("page")
		} else {
			query.Set("page", strconv.Itoa(page-1))
		}
		previous := base
		if encoded := query.Encode(); len(encoded) > 0 {
			previous += "?" + encoded
		}
		response.Previous = &previous
	}

	return response
}

// statusFromError maps service errors onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, recipes.ErrNotFound),
		errors.Is(err, accounts.ErrNotFound),
		errors.Is(err, social.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, recipes.ErrProtected),
		errors.Is(err, social.ErrProtected):
		return http.StatusConflict
	case errors.Is(err, recipes.ErrDuplicate),
		errors.Is(err, accounts.ErrDuplicate),
		errors.Is(err, social.ErrDuplicate),
		errors.Is(err, recipes.ErrBadReference),
		errors.Is(err, social.ErrCrossRecipe):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// createStatusFromError maps service errors of create operations. Rows the
// payload references are not URL resources, so a miss is a bad request
// rather than a 404.
func createStatusFromError(err error) int {
	status := statusFromError(err)
	if status == http.StatusNotFound {
		return http.StatusBadRequest
	}
	return status
}

package v1

import (
	"net/http"
	"strings"

	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/gin-gonic/gin"
)

// ContextUserKey is the gin context key the authenticated user is stored
// under.
const ContextUserKey = "currentUser"

// TokenAuthMiddleware authenticates requests by API token. Tokens travel in
// the Authorization header as `Token <key>` (or `Bearer <key>`); websocket
// clients, which cannot set headers from a browser, may send a token query
// parameter instead.
func TokenAuthMiddleware(authService accounts.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := tokenKeyFromRequest(ctx)
		if len(key) == 0 {
			var errorResponse ErrorResponse
			errorResponse.Message = "authentication credentials were not provided"
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse)
			return
		}

		user, err := authService.Authenticate(ctx.Request.Context(), key)
		if err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = "invalid token"
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse)
			return
		}

		ctx.Set(ContextUserKey, user)
		ctx.Next()
	}
}

func tokenKeyFromRequest(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	for _, scheme := range []string{"Token ", "Bearer "} {
		if strings.HasPrefix(header, scheme) {
			return strings.TrimSpace(header[len(scheme):])
		}
	}
	return ctx.Query("token")
}

// CurrentUser returns the authenticated user TokenAuthMiddleware stored on
// the context, or nil outside an authenticated route.
func CurrentUser(ctx *gin.Context) *accounts.User {
	value, exists := ctx.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*accounts.User)
	if !ok {
		return nil
	}
	return user
}

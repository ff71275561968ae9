package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/westernstar/blog/internal/application"
	"github.com/westernstar/blog/pkg/helpers"
	"github.com/westernstar/blog/pkg/response"
)

const identityKey = "identity"

// IdentityResolver turns a session cookie token into an identity.
// Implemented by application.AuthService.
type IdentityResolver interface {
	CurrentIdentity(ctx context.Context, token string) (*application.Identity, error)
}

// Session resolves the session cookie, if any, and threads the identity
// through the request context. Anonymous requests pass through; guards
// below decide what anonymous is allowed to do.
func Session(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}
		id, err := resolver.CurrentIdentity(c.Request.Context(), token)
		if err != nil || id == nil {
			c.Next()
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// IdentityFrom returns the request identity, or nil for anonymous.
func IdentityFrom(c *gin.Context) *application.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*application.Identity)
	return id
}

// RequireAuth refuses anonymous requests with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IdentityFrom(c) == nil {
			response.AbortError(c, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		c.Next()
	}
}

// RequireAdmin refuses anyone but the administrator with 403. Runs
// before the handler, so a refused request has no side effect.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := IdentityFrom(c)
		if id == nil {
			response.AbortError(c, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		if !id.IsAdmin {
			response.AbortError(c, http.StatusForbidden, "forbidden", nil)
			return
		}
		c.Next()
	}
}

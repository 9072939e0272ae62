package middleware

import (
	"net/http"
	"strings"

	"tallypos/internal/apierror"
	"tallypos/internal/model"
	"tallypos/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	IdentityKey = "identity"

	// SessionCookie is the cookie carrying the server-side session id.
	SessionCookie = "pos_session"
)

// Session resolves the caller's identity from the session cookie first and
// the Authorization bearer token second, both against the same store. It
// never aborts: routes that require authentication attach RequireRole, and
// /api/me answers its own 401.
func Session(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
			if id, err := store.Get(ctx, cookie); err == nil {
				c.Set(IdentityKey, id)
				c.Next()
				return
			}
		}

		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimPrefix(header, "Bearer ")
			if id, err := store.Get(ctx, token); err == nil {
				c.Set(IdentityKey, id)
			}
		}
		c.Next()
	}
}

// RequireRole gates a route behind a role floor. The check is attached per
// route at registration time: unresolved identity → 401, disabled account
// or insufficient role → 403.
func RequireRole(floor model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := GetIdentity(c)
		if id == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("You are not authorized."))
			return
		}
		if id.Role == model.RoleDisabled {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Your authorization was revoked."))
			return
		}
		if !id.Role.Satisfies(floor) {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("You may not perform this operation."))
			return
		}
		c.Next()
	}
}

// GetIdentity returns the resolved identity, or nil for anonymous callers.
func GetIdentity(c *gin.Context) *session.Identity {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*session.Identity)
	return id
}

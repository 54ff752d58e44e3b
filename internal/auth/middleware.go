package auth

import (
	"github.com/gin-gonic/gin"

	"userbase/internal/httperr"
	"userbase/internal/repository"
)

// Identity is the authenticated principal attached to the request context.
type Identity struct {
	ID    string
	Email string
	Name  string
}

const identityKey = "auth.identity"

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

// RequireAuth validates the session cookie and re-loads the user record on
// every request, so a deleted account is locked out even while its token
// signature is still valid.
func RequireAuth(tokens *TokenManager, users repository.UserRepository, abort func(*gin.Context, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(CookieName)
		if err != nil || tokenStr == "" {
			abort(c, httperr.Unauthorized("No token provided"))
			return
		}

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			abort(c, err)
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			abort(c, err)
			return
		}
		if user == nil {
			abort(c, httperr.Unauthorized("Invalid or expired token"))
			return
		}

		c.Set(identityKey, Identity{ID: user.ID, Email: user.Email, Name: user.Name})
		c.Next()
	}
}

// CurrentUser returns the identity attached by RequireAuth.
func CurrentUser(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys under which the middleware stores the caller's identity.
const (
	UserIDKey = "user_id"
	RolesKey  = "roles"
)

// Middleware validates the Authorization bearer token and injects the caller
// identity into the gin context. Requests without a valid token are rejected
// with 401 before reaching any handler.
func Middleware(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := tokens.Validate(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RolesKey, claims.Roles)
		c.Next()
	}
}

// CallerID returns the authenticated user id set by Middleware.
func CallerID(c *gin.Context) (string, bool) {
	id, ok := c.Get(UserIDKey)
	if !ok {
		return "", false
	}
	s, ok := id.(string)
	return s, ok && s != ""
}

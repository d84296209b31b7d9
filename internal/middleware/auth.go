package middleware

import (
	"net/http"
	"strings"

	"guestnest/internal/pkg/response"

	jwtsvc "guestnest/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Auth validates the Bearer token and stores user_id/role on the context.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// OptionalAuth populates user_id/role when a valid token is present but lets
// anonymous requests through. Used by the assistant endpoints, which serve
// guests that have not signed in yet.
func OptionalAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			if claims, err := jwt.ValidateToken(tokenStr); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("role", claims.Role)
			}
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
	c.Abort()
}

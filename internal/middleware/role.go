package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole lets the request through only when JWTAuth stored the wanted role
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := c.GetString(ContextCallerKey)
		if caller == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":             "authorization_required",
				"error_description": "no authenticated caller",
			})
			return
		}

		if got := c.GetString(ContextRoleKey); got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":             "insufficient_role",
				"error_description": "route requires role " + role,
				"role":              got,
			})
			return
		}

		c.Next()
	}
}

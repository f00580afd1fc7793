package middleware

import (
	"net/http"
	"strings"

	"terapiku/utils"

	"github.com/gin-gonic/gin"
)

// AuthUserKey is the gin context key holding the authenticated user.
const AuthUserKey = "authUser"

// JWTAuthMiddleware validates the bearer token and stores the acting user's
// identity (id, name, role) in the request context for audit stamping.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		user, err := utils.ExtractUserFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(AuthUserKey, user)
		c.Next()
	}
}

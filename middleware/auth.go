package middleware

import (
	"net/http"
	"strings"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// ContextEmailKey is where the authenticated caller's email is stored on the
// request context.
const ContextEmailKey = "email"

// JWTAuthMiddleware verifies the bearer token's signature and expiry and,
// when a session cache is supplied, that the token has not been revoked. The
// verified email claim is set on the context for downstream handlers.
func JWTAuthMiddleware(sessions *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token claims"})
			return
		}

		if sessions != nil {
			live, err := utils.AuthSessionExists(sessions, utils.HashToken(tokenString))
			if err != nil || !live {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
				return
			}
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

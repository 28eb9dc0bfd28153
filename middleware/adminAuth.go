package middleware

import (
	"net/http"

	"doctorsportal/services/user"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates privileged routes behind the role gate. It must
// run after JWTAuthMiddleware so the caller's email is already verified.
func AdminAuthMiddleware(userService user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		admin, err := userService.IsAdmin(email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Role lookup failed"})
			return
		}
		if !admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin privilege required"})
			return
		}
		c.Next()
	}
}

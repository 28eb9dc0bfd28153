package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves role promotion and demotion. Both routes additionally
// sit behind the admin middleware; the service re-checks the requester's role
// so the gate holds even if the route wiring changes.
type AdminHandler struct {
	Users user.UserService
}

func NewAdminHandler(users user.UserService) *AdminHandler {
	return &AdminHandler{Users: users}
}

func (h *AdminHandler) PromoteAdminHandler(c *gin.Context) {
	h.setRole(c, h.Users.PromoteToAdmin)
}

func (h *AdminHandler) DemoteAdminHandler(c *gin.Context) {
	h.setRole(c, h.Users.DemoteToPatient)
}

func (h *AdminHandler) setRole(c *gin.Context, apply func(requester, target string) error) {
	logger := getLogger(c)

	requester := c.GetString(middleware.ContextEmailKey)
	target := c.Param("email")

	err := apply(requester, target)
	switch {
	case errors.Is(err, user.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin privilege required"})
	case errors.Is(err, user.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case err != nil:
		logger.Error("Failed to change role", zap.String("target", target), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "User store unavailable"})
	default:
		c.JSON(http.StatusOK, gin.H{"modified": true})
	}
}

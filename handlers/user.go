package handlers

import (
	"net/http"
	"strings"

	"doctorsportal/models"
	"doctorsportal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves identity upsert, listing, and admin-status queries.
type UserHandler struct {
	Users user.UserService
}

func NewUserHandler(users user.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

// UpsertUserHandler creates or refreshes a user record on sign-in and returns
// a fresh access token for it.
func (h *UserHandler) UpsertUserHandler(c *gin.Context) {
	logger := getLogger(c)

	email := c.Param("email")
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	u.Email = email

	token, err := h.Users.UpsertUser(u)
	if err != nil {
		logger.Error("Failed to upsert user", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "User store unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// ListUsersHandler returns every registered user.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	logger := getLogger(c)

	users, err := h.Users.GetAllUsers()
	if err != nil {
		logger.Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "User store unavailable"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetAdminStatusHandler reports whether the given email holds the admin role.
func (h *UserHandler) GetAdminStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	email := c.Param("email")
	admin, err := h.Users.IsAdmin(email)
	if err != nil {
		logger.Error("Failed to check admin role", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "User store unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// RevokeTokenHandler invalidates the caller's current access token.
func (h *UserHandler) RevokeTokenHandler(c *gin.Context) {
	logger := getLogger(c)

	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	if err := h.Users.RevokeToken(tokenString); err != nil {
		logger.Error("Failed to revoke token", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Session cache unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"revoked": true})
}

package handlers

import (
	"net/http"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler returns the latest collaborator health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}

// RootHandler is a liveness probe.
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Doctors portal API"})
}

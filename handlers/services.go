package handlers

import (
	"net/http"

	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler serves the treatment catalog and per-date availability.
type ServiceHandler struct {
	Catalog serviceRepo.ServiceRepository
	Engine  availability.Engine
}

func NewServiceHandler(catalog serviceRepo.ServiceRepository, engine availability.Engine) *ServiceHandler {
	return &ServiceHandler{Catalog: catalog, Engine: engine}
}

// ListServicesHandler returns every treatment title.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	logger := getLogger(c)

	services, err := h.Catalog.GetTitles()
	if err != nil {
		logger.Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetAvailableHandler returns the full catalog with each service's free slots
// for the queried date.
func (h *ServiceHandler) GetAvailableHandler(c *gin.Context) {
	logger := getLogger(c)

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'date' query parameter"})
		return
	}

	available, err := h.Engine.ComputeAvailability(date)
	if err != nil {
		logger.Error("Failed to compute availability", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Availability computation failed"})
		return
	}
	c.JSON(http.StatusOK, available)
}

package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the admin-gated doctor roster.
type DoctorHandler struct {
	Doctors doctor.DoctorService
}

func NewDoctorHandler(doctors doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Doctors: doctors}
}

func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	logger := getLogger(c)

	doctors, err := h.Doctors.List()
	if err != nil {
		logger.Error("Failed to list doctors", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Doctor store unavailable"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) AddDoctorHandler(c *gin.Context) {
	logger := getLogger(c)

	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Doctors.Add(d)
	if err != nil {
		logger.Error("Failed to add doctor", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	logger := getLogger(c)

	email := c.Param("email")
	err := h.Doctors.Remove(email)
	switch {
	case errors.Is(err, doctor.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
	case err != nil:
		logger.Error("Failed to delete doctor", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Doctor store unavailable"})
	default:
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

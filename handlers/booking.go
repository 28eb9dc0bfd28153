package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking submission, patient dashboards, and payment
// confirmation.
type BookingHandler struct {
	Bookings booking.Service
	Logger   *zap.Logger
}

func NewBookingHandler(bookings booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Logger: logger}
}

// SubmitBookingHandler arbitrates a new booking request. A duplicate
// (treatment, date, patient) key is a normal "already booked" outcome, not an
// error.
func (h *BookingHandler) SubmitBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Bookings.SubmitBooking(req)
	if errors.Is(err, booking.ErrInvalidRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required booking fields"})
		return
	}
	if err != nil {
		h.Logger.Error("Booking submission failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Booking store unavailable"})
		return
	}

	if !result.Accepted {
		c.JSON(http.StatusOK, result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListPatientBookingsHandler returns the caller's bookings. The queried
// patient must match the authenticated email.
func (h *BookingHandler) ListPatientBookingsHandler(c *gin.Context) {
	patient := c.Query("patient")
	email := c.GetString(middleware.ContextEmailKey)
	if patient == "" || patient != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access is denied to this route"})
		return
	}

	bookings, err := h.Bookings.ListForPatient(patient)
	if err != nil {
		h.Logger.Error("Failed to list patient bookings", zap.String("patient", patient), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Booking store unavailable"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByIDHandler returns a single booking, used by the payment page.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	id := c.Param("id")

	b, err := h.Bookings.GetBookingByID(id)
	switch {
	case errors.Is(err, booking.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing booking id"})
	case errors.Is(err, booking.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case err != nil:
		h.Logger.Error("Failed to fetch booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Booking store unavailable"})
	default:
		c.JSON(http.StatusOK, b)
	}
}

type confirmPaymentRequest struct {
	TransactionID string `json:"transactionId"`
}

// ConfirmPaymentHandler records a completed payment against a booking.
func (h *BookingHandler) ConfirmPaymentHandler(c *gin.Context) {
	id := c.Param("id")

	var req confirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Bookings.ConfirmPayment(id, req.TransactionID)
	switch {
	case errors.Is(err, booking.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing booking id or transaction id"})
	case errors.Is(err, booking.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case err != nil:
		h.Logger.Error("Payment confirmation failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Booking store unavailable"})
	default:
		c.JSON(http.StatusOK, b)
	}
}

package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler opens payment intents for booking fees.
type PaymentHandler struct {
	Payments payment.Client
}

func NewPaymentHandler(payments payment.Client) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

// CreatePaymentIntentHandler converts the service fee to minor currency units
// and asks the payment provider for a client secret.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Fee <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fee must be positive"})
		return
	}

	amount := int64(req.Fee * 100)
	clientSecret, err := h.Payments.CreateIntent(c.Request.Context(), amount, "usd")
	if err != nil {
		logger.Error("Failed to create payment intent", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payment provider unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

package handlers

import (
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler serves public review listing and authenticated submission.
type ReviewHandler struct {
	Reviews review.ReviewService
}

func NewReviewHandler(reviews review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews}
}

func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	logger := getLogger(c)

	reviews, err := h.Reviews.List()
	if err != nil {
		logger.Error("Failed to list reviews", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Review store unavailable"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) AddReviewHandler(c *gin.Context) {
	logger := getLogger(c)

	var r models.Review
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	r.Email = c.GetString(middleware.ContextEmailKey)

	created, err := h.Reviews.Add(r)
	if err != nil {
		logger.Error("Failed to add review", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

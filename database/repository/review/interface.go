package reviewRepo

import "doctorsportal/models"

// ReviewRepository defines methods for review access.
type ReviewRepository interface {
	// GetAll retrieves all reviews.
	GetAll() ([]models.Review, error)
	// Create inserts a new review.
	Create(review *models.Review) error
}

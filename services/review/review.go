package review

import (
	"fmt"

	reviewRepo "doctorsportal/database/repository/review"
	"doctorsportal/models"

	"github.com/google/uuid"
)

// ReviewService manages patient reviews of the clinic.
type ReviewService interface {
	List() ([]models.Review, error)
	Add(r models.Review) (*models.Review, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo reviewRepo.ReviewRepository
}

func (s *DefaultReviewService) List() ([]models.Review, error) {
	return s.Repo.GetAll()
}

func (s *DefaultReviewService) Add(r models.Review) (*models.Review, error) {
	if r.Reviewer == "" {
		return nil, fmt.Errorf("reviewer name is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	r.ID = uuid.New().String()
	if err := s.Repo.Create(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

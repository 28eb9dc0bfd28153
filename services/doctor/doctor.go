package doctor

import (
	"errors"
	"fmt"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"

	"github.com/google/uuid"
)

// ErrNotFound marks a roster lookup miss.
var ErrNotFound = errors.New("doctor not found")

// DoctorService manages the clinic's doctor roster. All mutations are gated
// behind the admin middleware at the route layer.
type DoctorService interface {
	List() ([]models.Doctor, error)
	Add(d models.Doctor) (*models.Doctor, error)
	Remove(email string) error
}

// DefaultDoctorService implements DoctorService.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) List() ([]models.Doctor, error) {
	return s.Repo.GetAll()
}

func (s *DefaultDoctorService) Add(d models.Doctor) (*models.Doctor, error) {
	if d.Name == "" || d.Email == "" {
		return nil, fmt.Errorf("doctor name and email are required")
	}
	d.ID = uuid.New().String()
	if err := s.Repo.Create(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DefaultDoctorService) Remove(email string) error {
	matched, err := s.Repo.DeleteByEmail(email)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

package doctorRepo

import "doctorsportal/models"

// DoctorRepository defines methods for doctor roster access.
type DoctorRepository interface {
	// GetAll retrieves the full doctor roster.
	GetAll() ([]models.Doctor, error)
	// Create adds a doctor to the roster.
	Create(doctor *models.Doctor) error
	// DeleteByEmail removes a doctor by email. Returns false when no doctor
	// matches.
	DeleteByEmail(email string) (bool, error)
}

package serviceRepo

import "doctorsportal/models"

// ServiceRepository defines read access to the treatment catalog.
type ServiceRepository interface {
	// GetAll retrieves every service with all fields, in catalog order.
	GetAll() ([]models.Service, error)
	// GetTitles retrieves every service with only the title field populated.
	GetTitles() ([]models.Service, error)
	// GetByTitle retrieves a single service by its treatment name.
	// Returns (nil, nil) when no service matches.
	GetByTitle(title string) (*models.Service, error)
}

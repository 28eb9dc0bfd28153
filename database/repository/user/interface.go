package userRepo

import "doctorsportal/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByEmail retrieves a user by email. Returns (nil, nil) on a miss.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Upsert inserts or updates the user record keyed by email.
	Upsert(user *models.User) error
	// SetRole updates the role of the user keyed by email. Returns false when
	// no user matches.
	SetRole(email string, role models.Role) (bool, error)
}

package user

import "doctorsportal/models"

// UserService manages patient/admin identities and their access tokens.
type UserService interface {
	// UpsertUser creates or refreshes the user record keyed by email and
	// issues a fresh access token for it.
	UpsertUser(u models.User) (string, error)
	// GetAllUsers lists every registered user.
	GetAllUsers() ([]models.User, error)
	// IsAdmin reports whether the identity holds the admin role. A missing
	// user record yields false, not an error.
	IsAdmin(email string) (bool, error)
	// PromoteToAdmin grants the admin role to target. The requester must
	// already be an admin.
	PromoteToAdmin(requester, target string) error
	// DemoteToPatient revokes the admin role from target. The requester must
	// already be an admin.
	DemoteToPatient(requester, target string) error
	// RevokeToken invalidates an issued access token's session.
	RevokeToken(tokenString string) error
}

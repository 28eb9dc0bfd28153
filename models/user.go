package models

import "time"

// Role is the access level attached to a user record.
type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

// User represents a patient or admin account, keyed by email.
type User struct {
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL  string    `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role      Role      `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

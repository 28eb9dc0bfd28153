package models

import "time"

// Doctor represents a member of the clinic's doctor roster.
type Doctor struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"` // Unique, used as the roster key
	Specialty string    `bson:"specialty" json:"specialty"`
	ImageURL  string    `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

package models

import "time"

// Review is a patient-submitted rating of the clinic.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	Reviewer  string    `bson:"reviewer" json:"reviewer"` // Display name
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

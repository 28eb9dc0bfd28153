package models

import "time"

// Booking represents a patient's reservation of one slot for one treatment on one date.
type Booking struct {
	ID              string    `bson:"id" json:"id"`                           // Opaque booking identifier (UUID)
	Treatment       string    `bson:"treatment" json:"treatment"`             // References Service.Title
	Date            string    `bson:"date" json:"date"`                       // Calendar date, stored verbatim as submitted
	Patient         string    `bson:"patient" json:"patient"`                 // Patient identity (email)
	PatientName     string    `bson:"patientName,omitempty" json:"patientName,omitempty"`
	PatientSlotTime string    `bson:"patientSlotTime" json:"patientSlotTime"` // Reserved slot label
	Fee             float64   `bson:"fee,omitempty" json:"fee,omitempty"`
	Paid            bool      `bson:"paid" json:"paid"`
	TransactionID   string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the input for submitting a new booking.
type BookingRequest struct {
	Treatment       string  `json:"treatment"`
	Date            string  `json:"date"`
	Patient         string  `json:"patient"`
	PatientName     string  `json:"patientName,omitempty"`
	PatientSlotTime string  `json:"patientSlotTime"`
	Fee             float64 `json:"fee,omitempty"`
}

// BookingResult reports the outcome of a booking submission. On acceptance
// Record holds the inserted booking; on conflict Existing holds the booking
// already occupying the (treatment, date, patient) key.
type BookingResult struct {
	Accepted bool     `json:"accepted"`
	Record   *Booking `json:"record,omitempty"`
	Existing *Booking `json:"existing,omitempty"`
}

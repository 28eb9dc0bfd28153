package models

import "time"

// Payment is an append-only record of a confirmed payment against a booking.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	Patient       string    `bson:"patient,omitempty" json:"patient,omitempty"`
	Treatment     string    `bson:"treatment,omitempty" json:"treatment,omitempty"`
	Amount        float64   `bson:"amount,omitempty" json:"amount,omitempty"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// PaymentIntentRequest asks the payment provider for a client secret covering
// the given service fee.
type PaymentIntentRequest struct {
	Fee float64 `json:"fee"`
}

package paymentRepo

import "doctorsportal/models"

// PaymentRepository defines methods for the append-only payment ledger.
type PaymentRepository interface {
	// Create appends a payment record.
	Create(payment *models.Payment) error
	// GetByBookingID retrieves all payment records for a booking.
	GetByBookingID(bookingID string) ([]models.Payment, error)
}

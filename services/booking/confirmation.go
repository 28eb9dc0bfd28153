package booking

import (
	"fmt"

	"doctorsportal/models"

	"github.com/google/uuid"
)

// ConfirmPayment records a payment against a booking and marks it paid. The
// update does not re-check slot availability: once booked, a slot is held
// regardless of payment status.
func (s *DefaultService) ConfirmPayment(bookingID, transactionID string) (*models.Booking, error) {
	if bookingID == "" || transactionID == "" {
		return nil, ErrInvalidRequest
	}

	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if b == nil {
		return nil, ErrNotFound
	}

	payment := &models.Payment{
		ID:            uuid.New().String(),
		BookingID:     b.ID,
		Patient:       b.Patient,
		Treatment:     b.Treatment,
		Amount:        b.Fee,
		TransactionID: transactionID,
	}
	if err := s.Payments.Create(payment); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	matched, err := s.Bookings.MarkPaid(b.ID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !matched {
		return nil, ErrNotFound
	}

	b.Paid = true
	b.TransactionID = transactionID
	return b, nil
}

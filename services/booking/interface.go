package booking

import "doctorsportal/models"

// Service defines the booking lifecycle: conflict-checked submission, patient
// dashboards, and payment confirmation.
type Service interface {
	SubmitBooking(req models.BookingRequest) (*models.BookingResult, error)
	GetBookingByID(id string) (*models.Booking, error)
	ListForPatient(patient string) ([]models.Booking, error)
	ConfirmPayment(bookingID, transactionID string) (*models.Booking, error)
}

// ReminderQueue enqueues an appointment reminder for an accepted booking.
type ReminderQueue interface {
	EnqueueReminder(payload models.ReminderPayload) error
}

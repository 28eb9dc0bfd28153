package bookingRepo

import (
	"errors"

	"doctorsportal/models"
)

// ErrDuplicateKey is returned by Create when the store's unique index on
// (treatment, date, patient) rejects the insert. The arbiter maps it to a
// conflict outcome rather than an error path.
var ErrDuplicateKey = errors.New("booking already exists for treatment/date/patient")

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its opaque identifier.
	// Returns (nil, nil) when no booking matches.
	GetByID(id string) (*models.Booking, error)
	// GetByKey retrieves the booking holding the (treatment, date, patient)
	// conflict key. Returns (nil, nil) when no booking matches.
	GetByKey(treatment, date, patient string) (*models.Booking, error)
	// GetByDate retrieves all bookings whose date field equals date verbatim.
	GetByDate(date string) ([]models.Booking, error)
	// GetByPatient retrieves all bookings made by the given patient email.
	GetByPatient(patient string) ([]models.Booking, error)
	// Create inserts a new booking record. Returns ErrDuplicateKey when the
	// conflict key is already taken.
	Create(booking *models.Booking) error
	// MarkPaid sets paid=true and the transaction id on a booking.
	// Returns (false, nil) when no booking matches the id.
	MarkPaid(id, transactionID string) (bool, error)
	// EnsureIndexes creates the collection's indexes, including the unique
	// compound index backing the conflict key.
	EnsureIndexes() error
}

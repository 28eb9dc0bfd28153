package booking

import (
	"errors"
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	paymentRepo "doctorsportal/database/repository/payment"
	"doctorsportal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultService implements Service. SubmitBooking arbitrates the conflict
// key (treatment, date, patient): at most one booking may hold it, regardless
// of slot time. The check-then-insert pair is backed by the store's unique
// index, so two racing submissions cannot both insert.
type DefaultService struct {
	Bookings  bookingRepo.BookingRepository
	Payments  paymentRepo.PaymentRepository
	Reminders ReminderQueue
	Logger    *zap.Logger
}

func (s *DefaultService) SubmitBooking(req models.BookingRequest) (*models.BookingResult, error) {
	if req.Treatment == "" || req.Date == "" || req.Patient == "" || req.PatientSlotTime == "" {
		return nil, ErrInvalidRequest
	}

	existing, err := s.Bookings.GetByKey(req.Treatment, req.Date, req.Patient)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if existing != nil {
		return &models.BookingResult{Accepted: false, Existing: existing}, nil
	}

	record := &models.Booking{
		ID:              uuid.New().String(),
		Treatment:       req.Treatment,
		Date:            req.Date,
		Patient:         req.Patient,
		PatientName:     req.PatientName,
		PatientSlotTime: req.PatientSlotTime,
		Fee:             req.Fee,
	}

	err = s.Bookings.Create(record)
	if errors.Is(err, bookingRepo.ErrDuplicateKey) {
		// Lost the race against a concurrent submission with the same key.
		// The winner's record is the existing booking now.
		winner, ferr := s.Bookings.GetByKey(req.Treatment, req.Date, req.Patient)
		if ferr != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, ferr)
		}
		return &models.BookingResult{Accepted: false, Existing: winner}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.enqueueReminder(record)

	return &models.BookingResult{Accepted: true, Record: record}, nil
}

// enqueueReminder is best-effort: a queue outage must not fail an accepted
// booking.
func (s *DefaultService) enqueueReminder(b *models.Booking) {
	if s.Reminders == nil {
		return
	}
	payload := models.ReminderPayload{
		BookingID: b.ID,
		Patient:   b.Patient,
		Treatment: b.Treatment,
		Date:      b.Date,
		SlotTime:  b.PatientSlotTime,
	}
	if err := s.Reminders.EnqueueReminder(payload); err != nil && s.Logger != nil {
		s.Logger.Warn("failed to enqueue appointment reminder",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}

func (s *DefaultService) GetBookingByID(id string) (*models.Booking, error) {
	if id == "" {
		return nil, ErrInvalidRequest
	}
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *DefaultService) ListForPatient(patient string) ([]models.Booking, error) {
	if patient == "" {
		return nil, ErrInvalidRequest
	}
	bookings, err := s.Bookings.GetByPatient(patient)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return bookings, nil
}

package availability

import (
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/models"

	"golang.org/x/sync/errgroup"
)

// Engine computes per-service slot availability for a given date.
type Engine interface {
	ComputeAvailability(date string) ([]models.AvailableService, error)
}

// DefaultEngine derives availability from the service catalog and the bookings
// stored for the queried date. It holds no state between calls and reflects
// the latest store contents on every call.
type DefaultEngine struct {
	Catalog  serviceRepo.ServiceRepository
	Bookings bookingRepo.BookingRepository
}

// ComputeAvailability returns every service in catalog order, each carrying
// the subset of its slots not yet reserved on the given date. The date string
// is matched against stored bookings verbatim; callers must pre-format it
// consistently.
func (e *DefaultEngine) ComputeAvailability(date string) ([]models.AvailableService, error) {
	var (
		services []models.Service
		bookings []models.Booking
	)

	// Catalog and bookings-for-date are independent reads; issue them together.
	var g errgroup.Group
	g.Go(func() error {
		var err error
		services, err = e.Catalog.GetAll()
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = e.Bookings.GetByDate(date)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("availability fetch failed: %w", err)
	}

	// Group the reserved slot times by treatment. Bookings referencing a
	// treatment absent from the catalog simply never get looked up.
	bookedByTreatment := make(map[string]map[string]struct{})
	for _, b := range bookings {
		slots, ok := bookedByTreatment[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			bookedByTreatment[b.Treatment] = slots
		}
		slots[b.PatientSlotTime] = struct{}{}
	}

	result := make([]models.AvailableService, 0, len(services))
	for _, svc := range services {
		booked := bookedByTreatment[svc.Title]
		available := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, taken := booked[slot]; !taken {
				available = append(available, slot)
			}
		}
		result = append(result, models.AvailableService{
			Service:        svc,
			AvailableSlots: available,
		})
	}
	return result, nil
}

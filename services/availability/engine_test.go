package availability

import (
	"errors"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	services []models.Service
	err      error
}

func (f *fakeCatalog) GetAll() ([]models.Service, error)    { return f.services, f.err }
func (f *fakeCatalog) GetTitles() ([]models.Service, error) { return f.services, f.err }
func (f *fakeCatalog) GetByTitle(title string) (*models.Service, error) {
	for i := range f.services {
		if f.services[i].Title == title {
			return &f.services[i], nil
		}
	}
	return nil, nil
}

type fakeBookingStore struct {
	bookings []models.Booking
	err      error
}

func (f *fakeBookingStore) GetByID(string) (*models.Booking, error) { return nil, nil }
func (f *fakeBookingStore) GetByKey(string, string, string) (*models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingStore) GetByDate(date string) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}
func (f *fakeBookingStore) GetByPatient(string) ([]models.Booking, error) { return nil, nil }
func (f *fakeBookingStore) Create(*models.Booking) error                  { return nil }
func (f *fakeBookingStore) MarkPaid(string, string) (bool, error)         { return false, nil }
func (f *fakeBookingStore) EnsureIndexes() error                          { return nil }

func newEngine(services []models.Service, bookings []models.Booking) *DefaultEngine {
	return &DefaultEngine{
		Catalog:  &fakeCatalog{services: services},
		Bookings: &fakeBookingStore{bookings: bookings},
	}
}

func TestComputeAvailabilityFiltersBookedSlots(t *testing.T) {
	services := []models.Service{
		{Title: "Teeth Cleaning", Slots: []string{"9:00 AM", "9:30 AM", "10:00 AM"}, Fee: 30},
	}
	bookings := []models.Booking{
		{Treatment: "Teeth Cleaning", Date: "May 19, 2022", Patient: "a@b.com", PatientSlotTime: "9:30 AM"},
	}

	engine := newEngine(services, bookings)
	result, err := engine.ComputeAvailability("May 19, 2022")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, []string{"9:00 AM", "10:00 AM"}, result[0].AvailableSlots)
}

func TestComputeAvailabilityPreservesSlotOrder(t *testing.T) {
	services := []models.Service{
		{Title: "Whitening", Slots: []string{"11:00 AM", "9:00 AM", "10:00 AM"}, Fee: 80},
	}
	bookings := []models.Booking{
		{Treatment: "Whitening", Date: "May 20, 2022", Patient: "a@b.com", PatientSlotTime: "9:00 AM"},
	}

	engine := newEngine(services, bookings)
	result, err := engine.ComputeAvailability("May 20, 2022")
	require.NoError(t, err)
	// Declared order survives the filter, untouched by any sorting.
	assert.Equal(t, []string{"11:00 AM", "10:00 AM"}, result[0].AvailableSlots)
}

func TestComputeAvailabilityNoInterferenceAcrossTreatments(t *testing.T) {
	services := []models.Service{
		{Title: "Teeth Cleaning", Slots: []string{"9:00 AM", "9:30 AM"}},
		{Title: "Whitening", Slots: []string{"9:00 AM", "9:30 AM"}},
	}
	bookings := []models.Booking{
		{Treatment: "Teeth Cleaning", Date: "May 19, 2022", Patient: "a@b.com", PatientSlotTime: "9:00 AM"},
	}

	engine := newEngine(services, bookings)
	result, err := engine.ComputeAvailability("May 19, 2022")
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, []string{"9:30 AM"}, result[0].AvailableSlots)
	// A booking for one treatment never reduces another treatment's slots.
	assert.Equal(t, []string{"9:00 AM", "9:30 AM"}, result[1].AvailableSlots)
}

func TestComputeAvailabilityDateMismatchReportsFullAvailability(t *testing.T) {
	services := []models.Service{
		{Title: "Teeth Cleaning", Slots: []string{"9:00 AM", "9:30 AM"}},
	}
	bookings := []models.Booking{
		{Treatment: "Teeth Cleaning", Date: "May 19, 2022", Patient: "a@b.com", PatientSlotTime: "9:00 AM"},
	}

	engine := newEngine(services, bookings)

	// The date string is matched verbatim; a differently formatted date is a
	// different date.
	result, err := engine.ComputeAvailability("2022-05-19")
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 AM", "9:30 AM"}, result[0].AvailableSlots)
}

func TestComputeAvailabilityIgnoresOrphanBookings(t *testing.T) {
	services := []models.Service{
		{Title: "Teeth Cleaning", Slots: []string{"9:00 AM", "9:30 AM"}},
	}
	bookings := []models.Booking{
		{Treatment: "Discontinued Treatment", Date: "May 19, 2022", Patient: "a@b.com", PatientSlotTime: "9:00 AM"},
	}

	engine := newEngine(services, bookings)
	result, err := engine.ComputeAvailability("May 19, 2022")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, []string{"9:00 AM", "9:30 AM"}, result[0].AvailableSlots)
}

func TestComputeAvailabilityIsIdempotent(t *testing.T) {
	services := []models.Service{
		{Title: "Teeth Cleaning", Slots: []string{"9:00 AM", "9:30 AM", "10:00 AM"}},
	}
	bookings := []models.Booking{
		{Treatment: "Teeth Cleaning", Date: "May 19, 2022", Patient: "a@b.com", PatientSlotTime: "10:00 AM"},
	}

	engine := newEngine(services, bookings)
	first, err := engine.ComputeAvailability("May 19, 2022")
	require.NoError(t, err)
	second, err := engine.ComputeAvailability("May 19, 2022")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeAvailabilityPaymentDoesNotAffectResult(t *testing.T) {
	services := []models.Service{
		{Title: "Teeth Cleaning", Slots: []string{"9:00 AM", "9:30 AM"}},
	}
	unpaid := []models.Booking{
		{Treatment: "Teeth Cleaning", Date: "May 19, 2022", Patient: "a@b.com", PatientSlotTime: "9:00 AM", Paid: false},
	}
	paid := []models.Booking{
		{Treatment: "Teeth Cleaning", Date: "May 19, 2022", Patient: "a@b.com", PatientSlotTime: "9:00 AM", Paid: true, TransactionID: "txn_1"},
	}

	before, err := newEngine(services, unpaid).ComputeAvailability("May 19, 2022")
	require.NoError(t, err)
	after, err := newEngine(services, paid).ComputeAvailability("May 19, 2022")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestComputeAvailabilityPropagatesStoreErrors(t *testing.T) {
	engine := &DefaultEngine{
		Catalog:  &fakeCatalog{services: []models.Service{{Title: "X", Slots: []string{"9:00 AM"}}}},
		Bookings: &fakeBookingStore{err: errors.New("connection reset")},
	}

	_, err := engine.ComputeAvailability("May 19, 2022")
	require.Error(t, err)
}

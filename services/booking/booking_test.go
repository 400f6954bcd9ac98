package booking

import (
	"testing"

	bookingRepo "docport/database/repository/booking"
	"docport/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository. When raceInsert is set,
// Create rejects duplicates the way the unique owner index would even though
// FindByOwner reported nothing, simulating a concurrent writer winning the
// check-then-insert window.
type fakeBookingRepo struct {
	stored     []models.Booking
	raceInsert bool
}

func (f *fakeBookingRepo) Create(b *models.Booking) (*models.Booking, error) {
	for _, existing := range f.stored {
		if existing.Email == b.Email && existing.AppointmentDate == b.AppointmentDate && existing.Treatment == b.Treatment {
			return nil, bookingRepo.ErrDuplicate
		}
	}
	f.stored = append(f.stored, *b)
	return b, nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) { return nil, nil }

func (f *fakeBookingRepo) GetByEmail(email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.stored {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByDate(date string) ([]models.Booking, error) { return nil, nil }

func (f *fakeBookingRepo) FindByOwner(date, email, treatment string) ([]models.Booking, error) {
	if f.raceInsert {
		return nil, nil
	}
	var out []models.Booking
	for _, b := range f.stored {
		if b.AppointmentDate == date && b.Email == email && b.Treatment == treatment {
			out = append(out, b)
		}
	}
	return out, nil
}

// recordingAvailability captures cache-invalidation calls so tests can assert
// which dates a booking write flushed.
type recordingAvailability struct {
	invalidated []string
	flushed     int
}

func (r *recordingAvailability) ComputeAvailability(date string) ([]models.TreatmentOption, error) {
	return nil, nil
}

func (r *recordingAvailability) InvalidateDate(date string) {
	r.invalidated = append(r.invalidated, date)
}

func (r *recordingAvailability) InvalidateAll() { r.flushed++ }

func TestCreateBookingStoresCandidate(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	created, err := svc.CreateBooking(models.Booking{
		Email:           "a@x.com",
		AppointmentDate: "2024-01-01",
		Treatment:       "Cleaning",
		Slot:            "9AM",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Len(t, repo.stored, 1)
}

func TestCreateBookingSecondIdenticalCandidateConflicts(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	candidate := models.Booking{
		Email:           "a@x.com",
		AppointmentDate: "2024-01-01",
		Treatment:       "Cleaning",
		Slot:            "9AM",
	}

	_, err := svc.CreateBooking(candidate)
	require.NoError(t, err)

	_, err = svc.CreateBooking(candidate)
	var conflict ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "You already have a booking on 2024-01-01", conflict.Error())
	assert.Len(t, repo.stored, 1, "store must contain exactly one matching record")
}

func TestCreateBookingSameTreatmentDifferentDateAllowed(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	first := models.Booking{Email: "a@x.com", AppointmentDate: "2024-01-01", Treatment: "Cleaning", Slot: "9AM"}
	second := first
	second.AppointmentDate = "2024-01-02"

	_, err := svc.CreateBooking(first)
	require.NoError(t, err)
	_, err = svc.CreateBooking(second)
	require.NoError(t, err)
	assert.Len(t, repo.stored, 2)
}

func TestCreateBookingIndexRejectionMapsToConflict(t *testing.T) {
	repo := &fakeBookingRepo{
		stored: []models.Booking{
			{Email: "a@x.com", AppointmentDate: "2024-01-01", Treatment: "Cleaning", Slot: "9AM"},
		},
		raceInsert: true,
	}
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.CreateBooking(models.Booking{
		Email:           "a@x.com",
		AppointmentDate: "2024-01-01",
		Treatment:       "Cleaning",
		Slot:            "10AM",
	})
	var conflict ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "2024-01-01", conflict.Date)
	assert.Len(t, repo.stored, 1)
}

func TestCreateBookingInvalidatesCachedDate(t *testing.T) {
	rec := &recordingAvailability{}
	svc := &DefaultBookingService{Repo: &fakeBookingRepo{}, Availability: rec}

	_, err := svc.CreateBooking(models.Booking{
		Email:           "a@x.com",
		AppointmentDate: "2024-01-01",
		Treatment:       "Cleaning",
		Slot:            "9AM",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01"}, rec.invalidated)
}

func TestCreateBookingConflictLeavesCacheUntouched(t *testing.T) {
	rec := &recordingAvailability{}
	repo := &fakeBookingRepo{stored: []models.Booking{
		{Email: "a@x.com", AppointmentDate: "2024-01-01", Treatment: "Cleaning", Slot: "9AM"},
	}}
	svc := &DefaultBookingService{Repo: repo, Availability: rec}

	_, err := svc.CreateBooking(models.Booking{
		Email:           "a@x.com",
		AppointmentDate: "2024-01-01",
		Treatment:       "Cleaning",
		Slot:            "10AM",
	})
	var conflict ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Empty(t, rec.invalidated)
}

package bookingRepo

import (
	"errors"

	"docport/models"
)

// ErrDuplicate is returned by Create when the store's unique index on
// (email, appointmentDate, treatment) rejects the insert. It closes the
// window between the application-level existence check and the write.
var ErrDuplicate = errors.New("duplicate booking")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking and returns it with its assigned ID.
	Create(booking *models.Booking) (*models.Booking, error)
	// GetByID retrieves a booking by its ID, or (nil, nil) when absent.
	GetByID(id string) (*models.Booking, error)
	// GetByEmail retrieves all bookings held by the given email.
	GetByEmail(email string) ([]models.Booking, error)
	// GetByDate retrieves all bookings for the given appointment date.
	GetByDate(date string) ([]models.Booking, error)
	// FindByOwner retrieves bookings matching all of (date, email, treatment).
	FindByOwner(date, email, treatment string) ([]models.Booking, error)
}

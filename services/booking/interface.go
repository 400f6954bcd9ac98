package booking

import (
	bookingRepo "docport/database/repository/booking"
	"docport/models"
	"docport/services/availability"
)

// BookingService owns booking creation and lookups. Creation enforces the
// one-booking-per-(email, date, treatment) rule.
type BookingService interface {
	// CreateBooking stores the candidate unless the caller already holds a
	// booking for the same treatment on the same date, in which case it
	// returns a ConflictError and writes nothing.
	CreateBooking(candidate models.Booking) (*models.Booking, error)
	// GetByEmail returns all bookings held by the given email.
	GetByEmail(email string) ([]models.Booking, error)
	// GetByID returns a booking by ID, or (nil, nil) when absent.
	GetByID(id string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Availability availability.AvailabilityService
}

package booking

import (
	"errors"
	"fmt"

	bookingRepo "docport/database/repository/booking"
	"docport/models"
	"docport/utils"

	"go.uber.org/zap"
)

// CreateBooking checks for an existing booking with the same
// (appointmentDate, email, treatment) triple and inserts the candidate only
// when none exists. The check-then-insert window is additionally covered by
// the store's unique owner index; a duplicate-key rejection from the index
// is reported as the same ConflictError the pre-check produces.
func (s *DefaultBookingService) CreateBooking(candidate models.Booking) (*models.Booking, error) {
	existing, err := s.Repo.FindByOwner(candidate.AppointmentDate, candidate.Email, candidate.Treatment)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing bookings: %w", err)
	}
	if len(existing) > 0 {
		return nil, ConflictError{Date: candidate.AppointmentDate}
	}

	created, err := s.Repo.Create(&candidate)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicate) {
			return nil, ConflictError{Date: candidate.AppointmentDate}
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	utils.GetLogger().Info("Booking created",
		zap.String("email", created.Email),
		zap.String("treatment", created.Treatment),
		zap.String("date", created.AppointmentDate),
		zap.String("slot", created.Slot),
	)

	if s.Availability != nil {
		s.Availability.InvalidateDate(created.AppointmentDate)
	}
	return created, nil
}

// GetByEmail returns all bookings held by the given email.
func (s *DefaultBookingService) GetByEmail(email string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", email, err)
	}
	return bookings, nil
}

// GetByID returns a booking by ID, or (nil, nil) when absent.
func (s *DefaultBookingService) GetByID(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

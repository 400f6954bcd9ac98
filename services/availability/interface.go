package availability

import (
	bookingRepo "docport/database/repository/booking"
	treatmentRepo "docport/database/repository/treatment"
	"docport/models"

	"github.com/go-redis/redis/v8"
)

// AvailabilityService computes remaining open slots per treatment for a date.
type AvailabilityService interface {
	// ComputeAvailability returns the catalog with each option's Slots
	// reduced to the windows still open on the given date.
	ComputeAvailability(date string) ([]models.TreatmentOption, error)
	// InvalidateDate drops any cached availability for the given date.
	InvalidateDate(date string)
	// InvalidateAll drops every cached availability entry. Catalog
	// mutations call this because cached projections embed price and
	// slot data.
	InvalidateAll()
}

// DefaultAvailabilityService is the production implementation.
// Cache may be nil, which disables the read-through cache entirely.
type DefaultAvailabilityService struct {
	Treatments treatmentRepo.TreatmentRepository
	Bookings   bookingRepo.BookingRepository
	Cache      *redis.Client
	CacheTTL   int // seconds
}

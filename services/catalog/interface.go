package catalog

import (
	doctorRepo "docport/database/repository/doctor"
	treatmentRepo "docport/database/repository/treatment"
	"docport/models"
	"docport/services/availability"
)

// CatalogService owns admin-side catalog management: treatment options,
// bulk price updates, and practitioner records.
type CatalogService interface {
	// Specialties returns the name-only projection of the treatment catalog.
	Specialties() ([]models.SpecialtyName, error)
	// CreateTreatment adds a new treatment option to the catalog.
	CreateTreatment(option models.TreatmentOption) (*models.TreatmentOption, error)
	// UpdateAllPrices sets the price on every catalog entry and returns the
	// number of modified entries.
	UpdateAllPrices(price float64) (int64, error)
	// GetDoctors returns all practitioner records.
	GetDoctors() ([]models.Doctor, error)
	// AddDoctor stores a new practitioner record.
	AddDoctor(doctor models.Doctor) (*models.Doctor, error)
	// RemoveDoctor deletes a practitioner record and returns the deleted count.
	RemoveDoctor(id string) (int64, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Treatments   treatmentRepo.TreatmentRepository
	Doctors      doctorRepo.DoctorRepository
	Availability availability.AvailabilityService
}

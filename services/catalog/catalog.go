package catalog

import (
	"fmt"

	"docport/models"
	"docport/utils"

	"go.uber.org/zap"
)

// Specialties returns the name-only projection of the treatment catalog.
func (s *DefaultCatalogService) Specialties() ([]models.SpecialtyName, error) {
	names, err := s.Treatments.GetAllNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}
	return names, nil
}

// CreateTreatment adds a new treatment option to the catalog. Its Slots list
// becomes the canonical inventory every future availability computation
// starts from.
func (s *DefaultCatalogService) CreateTreatment(option models.TreatmentOption) (*models.TreatmentOption, error) {
	created, err := s.Treatments.Create(&option)
	if err != nil {
		return nil, fmt.Errorf("failed to create treatment option: %w", err)
	}
	s.invalidateAvailability()
	return created, nil
}

// UpdateAllPrices sets the price on every catalog entry.
func (s *DefaultCatalogService) UpdateAllPrices(price float64) (int64, error) {
	modified, err := s.Treatments.UpdateAllPrices(price)
	if err != nil {
		return 0, fmt.Errorf("failed to update prices: %w", err)
	}
	utils.GetLogger().Info("Catalog prices updated", zap.Float64("price", price), zap.Int64("modified", modified))
	s.invalidateAvailability()
	return modified, nil
}

// GetDoctors returns all practitioner records.
func (s *DefaultCatalogService) GetDoctors() ([]models.Doctor, error) {
	doctors, err := s.Doctors.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

// AddDoctor stores a new practitioner record.
func (s *DefaultCatalogService) AddDoctor(doctor models.Doctor) (*models.Doctor, error) {
	created, err := s.Doctors.Create(&doctor)
	if err != nil {
		return nil, fmt.Errorf("failed to add doctor: %w", err)
	}
	return created, nil
}

// RemoveDoctor deletes a practitioner record.
func (s *DefaultCatalogService) RemoveDoctor(id string) (int64, error) {
	deleted, err := s.Doctors.DeleteByID(id)
	if err != nil {
		return 0, fmt.Errorf("failed to remove doctor: %w", err)
	}
	return deleted, nil
}

// invalidateAvailability drops all cached availability after a catalog
// mutation; cached projections embed price and slot data.
func (s *DefaultCatalogService) invalidateAvailability() {
	if s.Availability != nil {
		s.Availability.InvalidateAll()
	}
}

package treatmentRepo

import "docport/models"

// TreatmentRepository defines methods for treatment catalog data access.
type TreatmentRepository interface {
	// GetAll retrieves the whole catalog. There is exactly one catalog; it is
	// never scoped by date.
	GetAll() ([]models.TreatmentOption, error)
	// GetAllNames retrieves the name-only projection of the catalog.
	GetAllNames() ([]models.SpecialtyName, error)
	// Create inserts a new treatment option.
	Create(option *models.TreatmentOption) (*models.TreatmentOption, error)
	// UpdateAllPrices sets the price on every catalog entry and returns the
	// number of modified documents.
	UpdateAllPrices(price float64) (int64, error)
}

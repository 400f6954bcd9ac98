package doctorRepo

import "docport/models"

// DoctorRepository defines methods for practitioner data access.
type DoctorRepository interface {
	// GetAll retrieves all doctors.
	GetAll() ([]models.Doctor, error)
	// Create inserts a new doctor record.
	Create(doctor *models.Doctor) (*models.Doctor, error)
	// DeleteByID removes a doctor record and returns the deleted count.
	DeleteByID(id string) (int64, error)
}

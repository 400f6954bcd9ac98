package userRepo

import "docport/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// GetByEmail retrieves a user by email, or (nil, nil) when absent.
	GetByEmail(email string) (*models.User, error)
	// SetAdminRoleByID grants the admin role to the user with the given ID.
	SetAdminRoleByID(id string) error
}

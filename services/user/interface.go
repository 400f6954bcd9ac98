package user

import (
	userRepo "docport/database/repository/user"
	"docport/models"
)

// UserService defines business logic for user accounts and token issuance.
type UserService interface {
	// Register stores a new user record (created on first sign-in).
	Register(user models.User) (*models.User, error)
	// GetAllUsers returns every user record.
	GetAllUsers() ([]models.User, error)
	// IsAdmin reports whether the user with the given email holds the admin role.
	IsAdmin(email string) (bool, error)
	// PromoteToAdmin grants the admin role to the user with the given ID.
	PromoteToAdmin(id string) error
	// IssueToken returns a signed access token for a known email, or
	// ErrUnknownUser when no account exists for it.
	IssueToken(email string) (string, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

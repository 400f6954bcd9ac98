package user

import (
	"errors"
	"fmt"

	"docport/models"
	"docport/utils"

	"go.uber.org/zap"
)

// ErrUnknownUser signals a token request for an email with no account.
// Tokens are only issued to users that already exist.
var ErrUnknownUser = errors.New("unknown user")

// Register stores a new user record.
func (s *DefaultUserService) Register(user models.User) (*models.User, error) {
	created, err := s.Repo.Create(&user)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return created, nil
}

// GetAllUsers returns every user record.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// IsAdmin reports whether the user with the given email holds the admin role.
// An unknown email is simply not an admin.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, fmt.Errorf("failed to resolve role for %s: %w", email, err)
	}
	return user.IsAdmin(), nil
}

// PromoteToAdmin grants the admin role to the user with the given ID.
func (s *DefaultUserService) PromoteToAdmin(id string) error {
	if err := s.Repo.SetAdminRoleByID(id); err != nil {
		return fmt.Errorf("failed to promote user %s: %w", id, err)
	}
	utils.GetLogger().Info("User promoted to admin", zap.String("id", id))
	return nil
}

// IssueToken returns a signed access token for a known email. The token
// carries only the email claim; the caller's role is re-resolved from the
// store on every admin-guarded request.
func (s *DefaultUserService) IssueToken(email string) (string, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("failed to look up %s: %w", email, err)
	}
	if user == nil {
		return "", ErrUnknownUser
	}

	token, err := utils.GenerateToken(email, utils.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token for %s: %w", email, err)
	}
	return token, nil
}

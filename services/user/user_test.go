package user

import (
	"testing"

	"docport/models"
	"docport/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users       map[string]*models.User // keyed by email
	promotedIDs []string
}

func (f *fakeUserRepo) Create(u *models.User) (*models.User, error) {
	if f.users == nil {
		f.users = make(map[string]*models.User)
	}
	f.users[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) SetAdminRoleByID(id string) error {
	f.promotedIDs = append(f.promotedIDs, id)
	return nil
}

func TestIssueTokenUnknownUser(t *testing.T) {
	svc := &DefaultUserService{Repo: &fakeUserRepo{}}

	_, err := svc.IssueToken("nobody@x.com")
	require.ErrorIs(t, err, ErrUnknownUser)
}

func TestIssueTokenEmailClaimRoundTrips(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{
		"a@x.com": {Email: "a@x.com"},
	}}
	svc := &DefaultUserService{Repo: repo}

	token, err := svc.IssueToken("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := utils.ExtractEmailFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestIsAdmin(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{
		"admin@x.com":   {Email: "admin@x.com", Role: models.RoleAdmin},
		"patient@x.com": {Email: "patient@x.com", Role: "patient"},
		"plain@x.com":   {Email: "plain@x.com"},
	}}
	svc := &DefaultUserService{Repo: repo}

	tests := []struct {
		email string
		want  bool
	}{
		{"admin@x.com", true},
		{"patient@x.com", false},
		{"plain@x.com", false},
		{"nobody@x.com", false},
	}
	for _, tt := range tests {
		got, err := svc.IsAdmin(tt.email)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "IsAdmin(%q)", tt.email)
	}
}

func TestPromoteToAdmin(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := &DefaultUserService{Repo: repo}

	require.NoError(t, svc.PromoteToAdmin("651a0f"))
	assert.Equal(t, []string{"651a0f"}, repo.promotedIDs)
}

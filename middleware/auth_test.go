package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"docport/models"
	"docport/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*models.User
	err   error
}

func (f *fakeUserRepo) Create(u *models.User) (*models.User, error) { return u, nil }
func (f *fakeUserRepo) GetAll() ([]models.User, error)              { return nil, nil }
func (f *fakeUserRepo) SetAdminRoleByID(id string) error            { return nil }

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[email], nil
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(), func(c *gin.Context) {
		email, _ := CallerEmail(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return r
}

func TestAuthGuardMissingHeader(t *testing.T) {
	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)

	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthGuardMalformedToken(t *testing.T) {
	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthGuardExpiredToken(t *testing.T) {
	token, err := utils.GenerateToken("a@x.com", -time.Hour)
	require.NoError(t, err)

	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthGuardValidTokenAttachesEmail(t *testing.T) {
	token, err := utils.GenerateToken("a@x.com", time.Hour)
	require.NoError(t, err)

	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"a@x.com"}`, w.Body.String())
}

func adminRouter(repo *fakeUserRepo, strict bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", JWTAuthMiddleware(), AdminOnlyMiddleware(repo, strict), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminGuard(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{
		"admin@x.com":   {Email: "admin@x.com", Role: models.RoleAdmin},
		"patient@x.com": {Email: "patient@x.com", Role: "patient"},
		"plain@x.com":   {Email: "plain@x.com"},
	}}

	tests := []struct {
		name   string
		email  string
		strict bool
		want   int
	}{
		{"strict admin passes", "admin@x.com", true, http.StatusOK},
		{"strict patient forbidden", "patient@x.com", true, http.StatusForbidden},
		{"strict roleless forbidden", "plain@x.com", true, http.StatusForbidden},
		{"strict unknown forbidden", "nobody@x.com", true, http.StatusForbidden},
		{"permissive admin passes", "admin@x.com", false, http.StatusOK},
		{"permissive patient forbidden", "patient@x.com", false, http.StatusForbidden},
		{"permissive roleless passes", "plain@x.com", false, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := utils.GenerateToken(tt.email, time.Hour)
			require.NoError(t, err)

			r := adminRouter(repo, tt.strict)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAdminGuardWithoutAuthGuardRejects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Admin guard wired without the auth guard in front: no identity in
	// context, so the request must terminate unauthenticated.
	r.GET("/admin", AdminOnlyMiddleware(&fakeUserRepo{}, true), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

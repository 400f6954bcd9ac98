package handlers

import (
	"errors"
	"net/http"

	"docport/models"
	"docport/services/user"

	"github.com/gin-gonic/gin"
)

// UserHandler serves user account and token endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler handles POST /users.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user payload", "details": err.Error()})
		return
	}
	if u.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	created, err := h.Service.Register(u)
	if err != nil {
		respondServiceError(c, "failed to register user", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// ListUsersHandler handles GET /users.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Service.GetAllUsers()
	if err != nil {
		respondServiceError(c, "failed to list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdminHandler handles GET /users/admin/:email.
func (h *UserHandler) CheckAdminHandler(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.Service.IsAdmin(email)
	if err != nil {
		respondServiceError(c, "failed to resolve role", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// PromoteAdminHandler handles PUT /users/admin/:id (admin-guarded).
func (h *UserHandler) PromoteAdminHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.PromoteToAdmin(id); err != nil {
		respondServiceError(c, "failed to promote user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// IssueTokenHandler handles GET /jwt?email=. Tokens are only issued to
// existing users; an unknown email is answered 403 with an empty token.
func (h *UserHandler) IssueTokenHandler(c *gin.Context) {
	email := c.Query("email")

	token, err := h.Service.IssueToken(email)
	if err != nil {
		if errors.Is(err, user.ErrUnknownUser) {
			c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
			return
		}
		respondServiceError(c, "failed to issue token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

package middleware

import (
	"net/http"

	userRepo "docport/database/repository/user"
	"docport/models"
	"docport/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminOnlyMiddleware resolves the caller's stored role and rejects
// non-admins. It must run after JWTAuthMiddleware. The role is always
// re-resolved from the user store, never read from the token.
//
// strict controls the treatment of users with no stored role: true rejects
// them; false reproduces the legacy behavior of letting them through while
// still rejecting any present non-admin role.
func AdminOnlyMiddleware(users userRepo.UserRepository, strict bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := CallerEmail(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		user, err := users.GetByEmail(email)
		if err != nil {
			utils.GetLogger().Error("Failed to resolve caller role", zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
			return
		}

		if strict {
			if user == nil || !user.IsAdmin() {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
				return
			}
		} else {
			// Legacy mode: a caller with no stored role passes through.
			if user != nil && user.Role != "" && user.Role != models.RoleAdmin {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
				return
			}
		}

		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"docport/utils"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey is where the auth guard stores the verified caller email.
const ContextEmailKey = "email"

// JWTAuthMiddleware verifies the bearer token and attaches the caller's
// email to the request context. A missing header answers 401; a token that
// fails signature or expiry checks answers 403 — the two failure modes carry
// distinct status codes on purpose. Aborting here guarantees the handler
// chain never runs after an auth failure.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// CallerEmail returns the verified email set by JWTAuthMiddleware.
func CallerEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextEmailKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}

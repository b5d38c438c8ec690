package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sugarsphere/sweetshop-api/auth"
	"github.com/sugarsphere/sweetshop-api/models"
	"github.com/sugarsphere/sweetshop-api/repository"
)

const userKey = "user"

// ValidateToken parses the bearer token and loads the calling user into the
// gin context. Every protected group sits behind it.
func ValidateToken(secret string, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		claims, err := auth.ParseToken(tokenString, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		userID, _ := claims["user_id"].(string)
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin gates admin endpoints; it must run after ValidateToken.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user ValidateToken stored, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(userKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// SetCurrentUser injects a user directly; handler tests use it in place of
// ValidateToken.
func SetCurrentUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userKey, user)
		c.Next()
	}
}

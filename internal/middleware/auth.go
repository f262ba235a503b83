package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ailtonganem/Lara/internal/models"
	"github.com/ailtonganem/Lara/internal/services"
)

// JWTAuth validates the bearer token and stores the caller's user ID in the
// request context.
func JWTAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		userID, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// RequireAdmin gates a route group to administrator profiles.
func RequireAdmin(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := authService.GetProfile(c.Request.Context(), c.GetString("user_id"))
		if err != nil || profile.Role != models.RoleAdministrator {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "administrator access required"})
			return
		}
		c.Next()
	}
}

// RequireApproved gates a route group to approved profiles. A missing
// profile document counts as not approved.
func RequireApproved(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := authService.GetProfile(c.Request.Context(), c.GetString("user_id"))
		if err != nil || (!profile.Approved && profile.Role != models.RoleAdministrator) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account pending approval"})
			return
		}
		c.Next()
	}
}

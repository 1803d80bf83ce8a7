package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sumit03062/Task-Tracker/internal/auth"
	"github.com/sumit03062/Task-Tracker/internal/models"
	"github.com/sumit03062/Task-Tracker/internal/types"
)

type AuthenticatedUser struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Country string `json:"country"`
}

// AuthMiddleware resolves the bearer token, loads the acting user and
// places it in the request context under types.ContextUserKey.
func AuthMiddleware(database *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header format must be Bearer {token}"})
			return
		}

		userID, err := auth.ResolveUserID(parts[1])

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}

		var user models.User

		if err := database.First(&user, userID).Error; err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			Country: user.Country,
		})
		ctx.Next()
	}
}

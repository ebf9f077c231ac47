package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"thekedaar-server/models"
	"thekedaar-server/utils"
)

// AuthMiddleware validates the session token and sets the actor role (and
// worker id, for partners) on the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Authorization header required",
				"message": "Please provide a valid session token",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token format",
				"message": "Token must be in format: Bearer <token>",
			})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			log.Printf("❌ Token verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token",
				"message": "Token is invalid or expired",
			})
			c.Abort()
			return
		}

		c.Set("role", claims.Role)
		c.Set("worker_id", claims.WorkerID)
		c.Next()
	}
}

// RequireRole aborts requests whose session token carries a different role.
// Chain after AuthMiddleware.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := c.Get("role")
		if !exists || current.(models.UserRole) != role {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "Access denied",
				"message": "This portal requires the " + string(role) + " role",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// WorkerID returns the partner id carried by the session token, or 0.
func WorkerID(c *gin.Context) int {
	if v, exists := c.Get("worker_id"); exists {
		if id, ok := v.(int); ok {
			return id
		}
	}
	return 0
}

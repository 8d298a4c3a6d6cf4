package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gameshop-be/internal/entities"
	"gameshop-be/internal/session"
)

// Context keys set by SessionAuth for downstream handlers.
const (
	ContextUserID       = "user_id"
	ContextRole         = "role"
	ContextSessionToken = "session_token"
)

// SessionAuth resolves the session cookie and injects the login-time user
// snapshot into the request context. Requests without a live session are
// rejected with 401; expired and destroyed sessions look identical to
// absent ones.
func SessionAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		data, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			log.Printf("Failed to resolve session: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if data == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(ContextUserID, data.UserID)
		c.Set(ContextRole, data.Role)
		c.Set(ContextSessionToken, token)
		c.Next()
	}
}

// AdminOnly gates a route to sessions whose snapshot carries the admin
// role. Must run after SessionAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != entities.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}
		c.Next()
	}
}

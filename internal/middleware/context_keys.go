package middleware

import "github.com/gin-gonic/gin"

// contextKey is a private type for context keys to prevent collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	userRoleKey  = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		if userID, ok := v.(string); ok {
			return userID, true
		}
		return "", false
	}
	// check in the request context as well
	if v := c.Request.Context().Value(userIDKey); v != nil {
		if userID, ok := v.(string); ok {
			return userID, true
		}
	}
	return "", false
}

// GetUserRoleFromContext retrieves the authenticated user's role from the
// Gin context.
func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userRoleKey)); exists {
		if role, ok := v.(string); ok {
			return role, true
		}
		return "", false
	}
	if v := c.Request.Context().Value(userRoleKey); v != nil {
		if role, ok := v.(string); ok {
			return role, true
		}
	}
	return "", false
}

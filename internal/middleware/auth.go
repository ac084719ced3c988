package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT bearer
// tokens and stores the authenticated identity in the request context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		authenticate(c, parts[1], jwtSecret)
	}
}

// AuthMiddlewareWithQueryFallback behaves like AuthMiddleware but also
// accepts the token via the "token" query parameter when no Authorization
// header is present. Browser-initiated file downloads cannot set headers,
// so the download route needs this fallback.
func AuthMiddlewareWithQueryFallback(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				logger.Warn("Authorization header format invalid")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
				return
			}
			tokenString = parts[1]
		} else {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			logger.Warn("No credentials in header or query")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}

		authenticate(c, tokenString, jwtSecret)
	}
}

// authenticate validates the token and, on success, stores the user ID and
// role in both the Gin context and the standard request context, then
// enriches the request logger with the user ID.
func authenticate(c *gin.Context, tokenString string, jwtSecret string) {
	logger := GetLoggerFromCtx(c.Request.Context())

	claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret)
	if err != nil {
		logger.Warn("Invalid token", "error", err)
		msg := "Invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "Token has expired"
		} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
			msg = "Token not valid yet"
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
		return
	}

	userID := claims.Subject
	if userID == "" {
		logger.Error("User ID (subject) missing from valid token")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return
	}

	c.Set(string(userIDKey), userID)
	c.Set(string(userRoleKey), claims.Role)

	ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, userID)
	ctxWithRole := context.WithValue(ctxWithUser, userRoleKey, claims.Role)

	enrichedLogger := logger.With(slog.String("user_id", userID))
	c.Request = c.Request.WithContext(context.WithValue(ctxWithRole, loggerCtxKey, enrichedLogger))

	c.Next()
}

// RequireAdmin creates a Gin middleware handler that rejects requests whose
// authenticated role is not admin. It must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok || role != string(domain.RoleAdmin) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Admin access denied", slog.String("role", role))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

package middlewares

import (
	"MerakiHMS/utils"
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// contextKey defines a custom context key type to store user details.
type contextKey string

const (
	userIDKey     contextKey = "userID"
	userRoleKey   contextKey = "userRole"
	hospitalIDKey contextKey = "hospitalID"
	doctorIDKey   contextKey = "doctorID"
)

// BearerAuthMiddleware validates the PASETO token in the Authorization
// header and adds the claims to the request context. Missing, invalid or
// expired tokens end the request with 401 before any action is taken.
func BearerAuthMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateToken(token, requiredRoles...)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, userRoleKey, claims.Role)
		ctx = context.WithValue(ctx, hospitalIDKey, claims.HospitalID)
		ctx = context.WithValue(ctx, doctorIDKey, claims.DoctorID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ExtractUserIDFromContext retrieves the userID from the context.
func ExtractUserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok {
		return "", errors.New("user ID not found in context")
	}
	return userID, nil
}

// ExtractUserRoleFromContext retrieves the user role from the context.
func ExtractUserRoleFromContext(ctx context.Context) (string, error) {
	userRole, ok := ctx.Value(userRoleKey).(string)
	if !ok {
		return "", errors.New("user role not found in context")
	}
	return userRole, nil
}

// ExtractDoctorIDFromContext retrieves the doctor id claim from the context.
func ExtractDoctorIDFromContext(ctx context.Context) (string, error) {
	doctorID, ok := ctx.Value(doctorIDKey).(string)
	if !ok || doctorID == "" {
		return "", errors.New("doctor ID not found in context")
	}
	return doctorID, nil
}

// ExtractHospitalIDFromContext retrieves the hospital id claim from the context.
func ExtractHospitalIDFromContext(ctx context.Context) (string, error) {
	hospitalID, ok := ctx.Value(hospitalIDKey).(string)
	if !ok || hospitalID == "" {
		return "", errors.New("hospital ID not found in context")
	}
	return hospitalID, nil
}

// LoggingMiddleware logs information about incoming requests.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Printf("Request: %s %s | Status: %d | Duration: %v",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

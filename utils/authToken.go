package utils

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/o1egl/paseto"
)

const (
	AccessTokenExpiry  = 24 * time.Hour
	RefreshTokenExpiry = 7 * 24 * time.Hour
)

// TokenClaims is the data carried by a token. Doctor tokens include the
// hospital and doctor ids so profile and prescription-context lookups need
// no extra round trip.
type TokenClaims struct {
	UserID     string    `json:"userId"`
	Role       string    `json:"role"`
	HospitalID string    `json:"hospitalId"`
	DoctorID   string    `json:"doctorId"`
	Expiry     time.Time `json:"expiry"`
}

// GetSymmetricKey retrieves the symmetric key from the environment variable.
// Ensures it has the correct length (32 bytes).
func GetSymmetricKey() []byte {
	key := os.Getenv("SYMMETRIC_KEY")
	if len(key) != 32 {
		log.Fatalf("SYMMETRIC_KEY must be 32 bytes long. Current length: %d", len(key))
	}
	return []byte(key)
}

// GenerateTokens generates both the access token and refresh token for the
// given claims.
func GenerateTokens(claims TokenClaims) (accessToken, refreshToken string, err error) {
	accessToken, err = generatePASEToken(claims, AccessTokenExpiry)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = generatePASEToken(claims, RefreshTokenExpiry)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateAccessToken generates only the access token.
func GenerateAccessToken(claims TokenClaims) (string, error) {
	return generatePASEToken(claims, AccessTokenExpiry)
}

func generatePASEToken(claims TokenClaims, expiry time.Duration) (string, error) {
	claims.Expiry = time.Now().Add(expiry)

	token, err := paseto.NewV2().Encrypt(GetSymmetricKey(), claims, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ValidateToken validates the given token string and checks for expiry and
// required roles. An expired token is the AuthExpired case: the caller
// surfaces 401 and the client re-authenticates.
func ValidateToken(tokenString string, requiredRoles ...string) (*TokenClaims, error) {
	claims, err := parseToken(tokenString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if time.Now().After(claims.Expiry) {
		return nil, errors.New("token expired")
	}

	if len(requiredRoles) == 0 {
		return claims, nil
	}

	for _, role := range requiredRoles {
		if claims.Role == role {
			return claims, nil
		}
	}

	return nil, errors.New("insufficient permissions")
}

func parseToken(tokenString string) (*TokenClaims, error) {
	var claims TokenClaims

	if err := paseto.NewV2().Decrypt(tokenString, GetSymmetricKey(), &claims, nil); err != nil {
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}

	return &claims, nil
}

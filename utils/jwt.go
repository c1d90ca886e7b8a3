package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is used when JWT_EXPIRES_HOURS is not set.
const DefaultTokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the JWT payload issued at login. The field names match the tokens
// issued by earlier deployments, so existing clients keep working.
type Claims struct {
	UserID  string   `json:"id"`
	Name    string   `json:"name"`
	Role    string   `json:"role"`
	Courses []string `json:"courses"`
	jwt.RegisteredClaims
}

func secretKey() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

func tokenTTL() time.Duration {
	if raw := os.Getenv("JWT_EXPIRES_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return DefaultTokenTTL
}

// GenerateToken signs a token carrying the user's identity and role.
func GenerateToken(userID, name, role string, courses []string) (string, error) {
	key, err := secretKey()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		UserID:  userID,
		Name:    name,
		Role:    role,
		Courses: courses,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL())),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// VerifyToken parses and validates a bearer token, returning its claims.
// Tampered, mis-signed or expired tokens all fail with ErrInvalidToken.
func VerifyToken(tokenString string) (*Claims, error) {
	key, err := secretKey()
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

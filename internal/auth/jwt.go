package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken signs a 24h session token. There are no user accounts; a
// successful passkey check is the only identity the system knows.
func GenerateToken(secret string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   "landlord",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

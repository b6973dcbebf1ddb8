package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"rentledger-backend/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestGenerateTokenRoundTrip(t *testing.T) {
	signed, err := GenerateToken(testSecret)
	require.NoError(t, err)

	token, err := jwt.ParseWithClaims(signed, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, "landlord", claims.Subject)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestGenerateTokenRejectsWrongSecret(t *testing.T) {
	signed, err := GenerateToken(testSecret)
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("another-secret-entirely-32-chars!"), nil
	})
	assert.Error(t, err)
}

func TestPasskeyMatchesPlain(t *testing.T) {
	cfg := &config.Config{Passkey: "open-sesame"}
	assert.True(t, passkeyMatches(cfg, "open-sesame"))
	assert.False(t, passkeyMatches(cfg, "wrong"))
}

func TestPasskeyMatchesHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{Passkey: "something-else", PasskeyHash: string(hash)}
	assert.True(t, passkeyMatches(cfg, "open-sesame"))
	assert.False(t, passkeyMatches(cfg, "something-else"))
}

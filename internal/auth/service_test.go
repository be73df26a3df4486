package auth

import (
	"testing"
	"time"

	apperrors "schoolpay-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testAuthConfig() *AuthConfig {
	return &AuthConfig{
		Enabled:   true,
		JWTSecret: testSecret,
		Issuer:    "schoolpay",
		Audience:  "schoolpay-clients",
	}
}

func signToken(t *testing.T, claims *Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() *Claims {
	return &Claims{
		UID:   "uid-123",
		Email: "ada@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "schoolpay",
			Audience:  jwt.ClaimStrings{"schoolpay-clients"},
			Subject:   "uid-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestNewServiceRequiresSecretWhenEnabled(t *testing.T) {
	_, err := NewService(&AuthConfig{Enabled: true})
	assert.Error(t, err)

	_, err = NewService(testAuthConfig())
	assert.NoError(t, err)
}

func TestVerifyTokenValid(t *testing.T) {
	service, err := NewService(testAuthConfig())
	require.NoError(t, err)

	tokenString := signToken(t, validClaims(), testSecret)

	claims, err := service.VerifyToken(tokenString)

	assert.NoError(t, err)
	assert.Equal(t, "uid-123", claims.UID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestVerifyTokenUIDFallsBackToSubject(t *testing.T) {
	service, err := NewService(testAuthConfig())
	require.NoError(t, err)

	claims := validClaims()
	claims.UID = ""
	tokenString := signToken(t, claims, testSecret)

	verified, err := service.VerifyToken(tokenString)

	assert.NoError(t, err)
	assert.Equal(t, "uid-123", verified.UID)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	service, err := NewService(testAuthConfig())
	require.NoError(t, err)

	tokenString := signToken(t, validClaims(), "other-secret")

	claims, err := service.VerifyToken(tokenString)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyTokenExpired(t *testing.T) {
	service, err := NewService(testAuthConfig())
	require.NoError(t, err)

	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	tokenString := signToken(t, claims, testSecret)

	verified, err := service.VerifyToken(tokenString)

	assert.Nil(t, verified)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyTokenWrongIssuer(t *testing.T) {
	service, err := NewService(testAuthConfig())
	require.NoError(t, err)

	claims := validClaims()
	claims.Issuer = "someone-else"
	tokenString := signToken(t, claims, testSecret)

	verified, err := service.VerifyToken(tokenString)

	assert.Nil(t, verified)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyTokenMissingExpiry(t *testing.T) {
	service, err := NewService(testAuthConfig())
	require.NoError(t, err)

	claims := validClaims()
	claims.ExpiresAt = nil
	tokenString := signToken(t, claims, testSecret)

	verified, err := service.VerifyToken(tokenString)

	assert.Nil(t, verified)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyTokenGarbage(t *testing.T) {
	service, err := NewService(testAuthConfig())
	require.NoError(t, err)

	verified, err := service.VerifyToken("not-a-token")

	assert.Nil(t, verified)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

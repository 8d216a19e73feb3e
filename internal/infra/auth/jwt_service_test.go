package auth

import (
	"testing"
	"time"

	"lodge/config"
	"lodge/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Auth.AccessTokenTTL = ttl

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(jwtTestConfig(time.Minute * 30))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.GenerateAccessToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(jwtTestConfig(time.Minute * 30))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	assert.NotErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	jwtService, err := NewJWTService(jwtTestConfig(time.Minute * 30))
	require.NoError(t, err)

	token, err := jwtService.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	// Flip the last signature character
	tampered := token[:len(token)-1]
	if token[len(token)-1] == 'A' {
		tampered += "B"
	} else {
		tampered += "A"
	}

	claims, err := jwtService.ValidateToken(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_WrongSigningAlgorithm(t *testing.T) {
	jwtService, err := NewJWTService(jwtTestConfig(time.Minute * 30))
	require.NoError(t, err)

	// Unsigned token, alg "none"
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Issue a token that is already expired
	jwtService, err := NewJWTService(jwtTestConfig(-time.Minute))
	require.NoError(t, err)

	token, err := jwtService.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	// Expired is a sub-case of invalid
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_TokenValidWithinTTL(t *testing.T) {
	jwtService, err := NewJWTService(jwtTestConfig(time.Minute * 30))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := jwtService.GenerateAccessToken(userID)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	// exp claim reflects the configured TTL
	require.NotNil(t, claims.ExpiresAt)
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, time.Minute*29)
	assert.LessOrEqual(t, remaining, time.Minute*30)
}

func TestJWTService_NonUUIDSubject(t *testing.T) {
	jwtService, err := NewJWTService(jwtTestConfig(time.Minute * 30))
	require.NoError(t, err)

	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := signed.SignedString([]byte("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.AccessTokenTTL = time.Minute * 30

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(jwtTestConfig(time.Minute * 45))
	require.NoError(t, err)
	assert.Equal(t, time.Minute*45, jwtService.AccessTokenDuration())

	// Zero TTL falls back to the default
	jwtService, err = NewJWTService(jwtTestConfig(0))
	require.NoError(t, err)
	assert.Equal(t, time.Minute*30, jwtService.AccessTokenDuration())
}

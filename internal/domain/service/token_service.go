package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a token fails validation for any reason:
// wrong signing algorithm, bad signature or malformed payload.
var ErrInvalidToken = errors.New("invalid token")

// ErrTokenExpired is returned when a structurally valid token has passed its
// expiration time. It wraps ErrInvalidToken, so errors.Is(err, ErrInvalidToken)
// holds for expired tokens as well.
var ErrTokenExpired = fmt.Errorf("%w: token expired", ErrInvalidToken)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a new signed access token for a given user.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string. It returns
	// ErrTokenExpired for expired tokens and ErrInvalidToken for every other
	// validation failure.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured lifetime of access tokens.
	AccessTokenDuration() time.Duration
}

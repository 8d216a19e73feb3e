// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lodge/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailWithHash retrieves a user together with their stored password hash.
	// The hash never travels on the entity; only the login flow needs it.
	FindByEmailWithHash(ctx context.Context, email string) (*entity.User, string, error)

	// Create persists a new user with the given password hash and fills in the
	// generated ID. A taken email surfaces as the user-already-exists domain error.
	Create(ctx context.Context, user *entity.User, passwordHash string) error
}

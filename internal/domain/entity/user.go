// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique guest account.
// Credentials are kept out of the entity; the persistence layer stores the
// password hash alongside the user record and only exposes it through
// dedicated repository methods.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Email     string    // The user's email, used as the login identifier.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

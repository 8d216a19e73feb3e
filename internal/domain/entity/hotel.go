package entity

import (
	"time"

	"github.com/google/uuid"
)

// Hotel represents a property that offers rooms for booking.
type Hotel struct {
	ID        uuid.UUID // The unique identifier for the hotel.
	Title     string    // The hotel's display name.
	Location  string    // Human-readable address or area description.
	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Facility represents an amenity that hotels can offer, e.g. "WiFi" or "Pool".
type Facility struct {
	ID        uuid.UUID // The unique identifier for the facility.
	Title     string    // The facility's display name.
	CreatedAt time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Room represents a bookable room type within a hotel.
type Room struct {
	ID          uuid.UUID // The unique identifier for the room.
	HotelID     uuid.UUID // Links this room to the hotel it belongs to.
	Title       string    // The room's display name, e.g. "Deluxe Double".
	Description string    // Optional free-form description.
	Price       int64     // Current nightly price in cents. Bookings snapshot this value at creation.
	Quantity    int       // Number of physical rooms of this type.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

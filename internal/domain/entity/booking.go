package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

// Booking statuses. New bookings are created as confirmed; cancelled bookings
// no longer occupy their room's dates.
const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of one room for a half-open date interval
// [DateFrom, DateTo). The nightly price is snapshotted from the room at
// creation time and never changes afterwards, even if the room's price does.
type Booking struct {
	ID        uuid.UUID     // The unique identifier for the booking.
	UserID    uuid.UUID     // The user who owns this booking.
	RoomID    uuid.UUID     // The room this booking occupies.
	DateFrom  time.Time     // Check-in date (inclusive), date precision, UTC.
	DateTo    time.Time     // Check-out date (exclusive), date precision, UTC.
	Price     int64         // Nightly price in cents, snapshotted at creation.
	Status    BookingStatus // Current lifecycle state.
	CreatedAt time.Time
}

// Nights returns the number of nights covered by the booking interval.
func (b *Booking) Nights() int {
	return int(b.DateTo.Sub(b.DateFrom).Hours() / 24)
}

// TotalCost returns the total price of the stay in cents.
func (b *Booking) TotalCost() int64 {
	return b.Price * int64(b.Nights())
}

// Overlaps reports whether the half-open intervals of two bookings intersect.
// Intervals that merely touch (one's check-out equals the other's check-in)
// do not overlap, so back-to-back stays are allowed.
func (b *Booking) Overlaps(other *Booking) bool {
	return b.DateFrom.Before(other.DateTo) && other.DateFrom.Before(b.DateTo)
}

// OverlapsRange reports whether the booking intersects the half-open interval
// [dateFrom, dateTo).
func (b *Booking) OverlapsRange(dateFrom, dateTo time.Time) bool {
	return b.DateFrom.Before(dateTo) && dateFrom.Before(b.DateTo)
}

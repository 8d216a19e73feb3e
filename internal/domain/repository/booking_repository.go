package repository

import (
	"context"
	"errors"

	"lodge/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookingNotFound is returned when the requested booking does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// ErrBookingConflict is returned when a booking's date interval collides with
// an existing confirmed booking for the same room.
var ErrBookingConflict = errors.New("booking dates conflict with an existing booking")

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	// CreateIfAvailable atomically checks that no confirmed booking for the
	// same room overlaps the half-open interval [DateFrom, DateTo) and inserts
	// the booking. It must serialize concurrent attempts on the same room so
	// that exactly one of two overlapping requests succeeds. Returns
	// ErrBookingConflict when the interval is taken.
	CreateIfAvailable(ctx context.Context, booking *entity.Booking) error

	// FindByID retrieves a single booking by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// FindAll retrieves every booking.
	FindAll(ctx context.Context) ([]*entity.Booking, error)

	// FindByUserID retrieves all bookings that belong to the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
}

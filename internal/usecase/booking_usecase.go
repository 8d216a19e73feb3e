package usecase

import (
	"context"
	"time"

	"lodge/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBookingInput defines the data required to create a booking.
// The interval [DateFrom, DateTo) is half-open: DateTo is the check-out day
// and is not occupied.
type CreateBookingInput struct {
	RoomID   uuid.UUID
	DateFrom time.Time
	DateTo   time.Time
}

// BookingUsecase defines the interface for reservation-related business operations.
type BookingUsecase interface {
	// CreateBooking books a room for the given user, snapshotting the room's
	// current price. Exactly one of several concurrent overlapping requests
	// for the same room succeeds.
	CreateBooking(ctx context.Context, userID uuid.UUID, input *CreateBookingInput) (*entity.Booking, error)

	// ListBookings returns every booking in the system.
	ListBookings(ctx context.Context) ([]*entity.Booking, error)

	// ListUserBookings returns the bookings belonging to the given user.
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)

	// GetBookingQR renders a check-in QR code (PNG) for a booking owned by the user.
	GetBookingQR(ctx context.Context, userID, bookingID uuid.UUID) ([]byte, error)
}

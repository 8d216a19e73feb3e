package repository

import (
	"context"
	"errors"

	"lodge/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRoomNotFound is returned when the requested room does not exist.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepository defines the persistence operations for rooms.
type RoomRepository interface {
	// FindByID retrieves a single room by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)

	// FindByHotelID retrieves all rooms belonging to a hotel.
	FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error)
}

package repository

import (
	"context"
	"errors"

	"lodge/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHotelNotFound is returned when the requested hotel does not exist.
var ErrHotelNotFound = errors.New("hotel not found")

// HotelRepository defines the persistence operations for hotels.
type HotelRepository interface {
	// FindByID retrieves a single hotel by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)

	// FindAll retrieves every hotel.
	FindAll(ctx context.Context) ([]*entity.Hotel, error)
}

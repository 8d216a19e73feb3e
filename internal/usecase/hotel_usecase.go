package usecase

import (
	"context"

	"lodge/internal/domain/entity"

	"github.com/google/uuid"
)

// HotelUsecase defines the interface for hotel catalog operations.
type HotelUsecase interface {
	// ListHotels returns every hotel.
	ListHotels(ctx context.Context) ([]*entity.Hotel, error)

	// ListHotelRooms returns the rooms of the given hotel.
	ListHotelRooms(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error)
}

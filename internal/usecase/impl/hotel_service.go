package impl

import (
	"context"
	"log/slog"

	deliverycontext "lodge/internal/delivery/context"
	"lodge/internal/domain/entity"
	domainerrors "lodge/internal/domain/errors"
	"lodge/internal/domain/repository"
	"lodge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// hotelService implements the HotelUsecase interface.
type hotelService struct {
	hotelRepo repository.HotelRepository
	roomRepo  repository.RoomRepository
	logger    *slog.Logger
}

// HotelServiceParams holds dependencies for HotelService, injected by Fx.
type HotelServiceParams struct {
	fx.In

	HotelRepo repository.HotelRepository
	RoomRepo  repository.RoomRepository
	Logger    *slog.Logger
}

// NewHotelService is the constructor for hotelService.
func NewHotelService(params HotelServiceParams) usecase.HotelUsecase {
	return &hotelService{
		hotelRepo: params.HotelRepo,
		roomRepo:  params.RoomRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *hotelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListHotels returns every hotel.
func (srv *hotelService) ListHotels(ctx context.Context) ([]*entity.Hotel, error) {
	hotels, err := srv.hotelRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list hotels", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list hotels")
	}

	return hotels, nil
}

// ListHotelRooms returns the rooms of the given hotel.
func (srv *hotelService) ListHotelRooms(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error) {
	if _, err := srv.hotelRepo.FindByID(ctx, hotelID); err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return nil, errors.Wrap(domainerrors.ErrHotelNotFound, "hotel does not exist")
		}

		return nil, errors.Wrap(err, "failed to resolve hotel")
	}

	rooms, err := srv.roomRepo.FindByHotelID(ctx, hotelID)
	if err != nil {
		srv.log(ctx).Error("Failed to list hotel rooms", slog.Any("hotelID", hotelID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list hotel rooms")
	}

	return rooms, nil
}

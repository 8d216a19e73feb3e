package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lodge/internal/domain/entity"
	domainerrors "lodge/internal/domain/errors"
	"lodge/internal/domain/repository"
	mockRepo "lodge/internal/mocks/repository"
	"lodge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hotelServiceFixture struct {
	service   usecase.HotelUsecase
	hotelRepo *mockRepo.MockHotelRepository
	roomRepo  *mockRepo.MockRoomRepository
}

func createTestHotelService(t *testing.T) *hotelServiceFixture {
	t.Helper()

	hotelRepo := mockRepo.NewMockHotelRepository(t)
	roomRepo := mockRepo.NewMockRoomRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewHotelService(HotelServiceParams{
		HotelRepo: hotelRepo,
		RoomRepo:  roomRepo,
		Logger:    logger,
	})

	return &hotelServiceFixture{
		service:   svc,
		hotelRepo: hotelRepo,
		roomRepo:  roomRepo,
	}
}

func TestHotelService_ListHotels_Success(t *testing.T) {
	f := createTestHotelService(t)

	ctx := context.Background()
	hotels := []*entity.Hotel{
		{ID: uuid.New(), Title: "Grand Plaza", Location: "Taipei"},
		{ID: uuid.New(), Title: "Sea View", Location: "Kaohsiung"},
	}

	f.hotelRepo.EXPECT().FindAll(ctx).Return(hotels, nil)

	got, err := f.service.ListHotels(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestHotelService_ListHotels_Error(t *testing.T) {
	f := createTestHotelService(t)

	ctx := context.Background()

	f.hotelRepo.EXPECT().FindAll(ctx).Return(nil, assert.AnError)

	got, err := f.service.ListHotels(ctx)

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestHotelService_ListHotelRooms_Success(t *testing.T) {
	f := createTestHotelService(t)

	ctx := context.Background()
	hotelID := uuid.New()
	hotel := &entity.Hotel{ID: hotelID, Title: "Grand Plaza"}
	rooms := []*entity.Room{
		{ID: uuid.New(), HotelID: hotelID, Title: "Standard", Price: 9900},
		{ID: uuid.New(), HotelID: hotelID, Title: "Deluxe", Price: 15900},
	}

	f.hotelRepo.EXPECT().FindByID(ctx, hotelID).Return(hotel, nil)
	f.roomRepo.EXPECT().FindByHotelID(ctx, hotelID).Return(rooms, nil)

	got, err := f.service.ListHotelRooms(ctx, hotelID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestHotelService_ListHotelRooms_HotelNotFound(t *testing.T) {
	f := createTestHotelService(t)

	ctx := context.Background()
	hotelID := uuid.New()

	f.hotelRepo.EXPECT().FindByID(ctx, hotelID).Return(nil, repository.ErrHotelNotFound)

	got, err := f.service.ListHotelRooms(ctx, hotelID)

	assert.ErrorIs(t, err, domainerrors.ErrHotelNotFound)
	assert.Nil(t, got)
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lodge/internal/domain/entity"
	domainerrors "lodge/internal/domain/errors"
	"lodge/internal/domain/repository"
	mockRepo "lodge/internal/mocks/repository"
	mockService "lodge/internal/mocks/service"
	"lodge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingServiceFixture struct {
	service       usecase.BookingUsecase
	txManager     *mockRepo.MockTransactionManager
	bookingRepo   *mockRepo.MockBookingRepository
	qrcodeService *mockService.MockQRCodeService
}

func createTestBookingService(t *testing.T) *bookingServiceFixture {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewBookingService(BookingServiceParams{
		TxManager:     txManager,
		BookingRepo:   bookingRepo,
		QRCodeService: qrcodeService,
		Logger:        logger,
	})

	return &bookingServiceFixture{
		service:       svc,
		txManager:     txManager,
		bookingRepo:   bookingRepo,
		qrcodeService: qrcodeService,
	}
}

func (f *bookingServiceFixture) onExecute(t *testing.T, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			setup(mockFactory)

			return fn(mockFactory)
		})
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	f := createTestBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	hotelID := uuid.New()
	roomID := uuid.New()
	bookingID := uuid.New()

	room := &entity.Room{ID: roomID, HotelID: hotelID, Price: 12500}
	hotel := &entity.Hotel{ID: hotelID, Title: "Grand Plaza"}

	f.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRoomRepo := mockRepo.NewMockRoomRepository(t)
		mockHotelRepo := mockRepo.NewMockHotelRepository(t)
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)

		factory.EXPECT().NewRoomRepository().Return(mockRoomRepo)
		factory.EXPECT().NewHotelRepository().Return(mockHotelRepo)
		factory.EXPECT().NewBookingRepository().Return(mockBookingRepo)

		mockRoomRepo.EXPECT().FindByID(ctx, roomID).Return(room, nil)
		mockHotelRepo.EXPECT().FindByID(ctx, hotelID).Return(hotel, nil)

		mockBookingRepo.EXPECT().
			CreateIfAvailable(ctx, mock.AnythingOfType("*entity.Booking")).
			Run(func(ctx context.Context, booking *entity.Booking) {
				booking.ID = bookingID
				booking.CreatedAt = time.Now()
			}).
			Return(nil)
	})

	booking, err := f.service.CreateBooking(ctx, userID, &usecase.CreateBookingInput{
		RoomID:   roomID,
		DateFrom: date(2026, time.October, 1),
		DateTo:   date(2026, time.October, 4),
	})

	require.NoError(t, err)
	assert.Equal(t, bookingID, booking.ID)
	assert.Equal(t, userID, booking.UserID)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)

	// Nightly price is snapshotted from the room at booking time.
	assert.Equal(t, int64(12500), booking.Price)
	assert.Equal(t, 3, booking.Nights())
	assert.Equal(t, int64(37500), booking.TotalCost())
}

func TestBookingService_CreateBooking_NormalizesTimestamps(t *testing.T) {
	f := createTestBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	hotelID := uuid.New()
	roomID := uuid.New()

	room := &entity.Room{ID: roomID, HotelID: hotelID, Price: 9900}
	hotel := &entity.Hotel{ID: hotelID}

	var created *entity.Booking

	f.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRoomRepo := mockRepo.NewMockRoomRepository(t)
		mockHotelRepo := mockRepo.NewMockHotelRepository(t)
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)

		factory.EXPECT().NewRoomRepository().Return(mockRoomRepo)
		factory.EXPECT().NewHotelRepository().Return(mockHotelRepo)
		factory.EXPECT().NewBookingRepository().Return(mockBookingRepo)

		mockRoomRepo.EXPECT().FindByID(ctx, roomID).Return(room, nil)
		mockHotelRepo.EXPECT().FindByID(ctx, hotelID).Return(hotel, nil)

		mockBookingRepo.EXPECT().
			CreateIfAvailable(ctx, mock.AnythingOfType("*entity.Booking")).
			Run(func(ctx context.Context, booking *entity.Booking) {
				created = booking
			}).
			Return(nil)
	})

	loc := time.FixedZone("UTC+8", 8*60*60)

	_, err := f.service.CreateBooking(ctx, userID, &usecase.CreateBookingInput{
		RoomID:   roomID,
		DateFrom: time.Date(2026, time.October, 1, 15, 30, 0, 0, loc),
		DateTo:   time.Date(2026, time.October, 3, 6, 0, 0, 0, loc),
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, date(2026, time.October, 1), created.DateFrom)
	assert.Equal(t, date(2026, time.October, 2), created.DateTo)
}

func TestBookingService_CreateBooking_InvalidDateRange(t *testing.T) {
	f := createTestBookingService(t)

	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name     string
		dateFrom time.Time
		dateTo   time.Time
	}{
		{"reversed range", date(2026, time.October, 4), date(2026, time.October, 1)},
		{"zero-night stay", date(2026, time.October, 1), date(2026, time.October, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := f.service.CreateBooking(ctx, userID, &usecase.CreateBookingInput{
				RoomID:   uuid.New(),
				DateFrom: tt.dateFrom,
				DateTo:   tt.dateTo,
			})

			assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
			assert.Nil(t, booking)
		})
	}
}

func TestBookingService_CreateBooking_RoomNotFound(t *testing.T) {
	f := createTestBookingService(t)

	ctx := context.Background()
	roomID := uuid.New()

	f.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRoomRepo := mockRepo.NewMockRoomRepository(t)
		mockHotelRepo := mockRepo.NewMockHotelRepository(t)
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)

		factory.EXPECT().NewRoomRepository().Return(mockRoomRepo)
		factory.EXPECT().NewHotelRepository().Return(mockHotelRepo)
		factory.EXPECT().NewBookingRepository().Return(mockBookingRepo)

		mockRoomRepo.EXPECT().FindByID(ctx, roomID).Return(nil, repository.ErrRoomNotFound)
	})

	booking, err := f.service.CreateBooking(ctx, uuid.New(), &usecase.CreateBookingInput{
		RoomID:   roomID,
		DateFrom: date(2026, time.October, 1),
		DateTo:   date(2026, time.October, 2),
	})

	assert.ErrorIs(t, err, domainerrors.ErrRoomNotFound)
	assert.Nil(t, booking)
}

func TestBookingService_CreateBooking_OrphanRoom(t *testing.T) {
	f := createTestBookingService(t)

	ctx := context.Background()
	hotelID := uuid.New()
	roomID := uuid.New()

	room := &entity.Room{ID: roomID, HotelID: hotelID, Price: 9900}

	f.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRoomRepo := mockRepo.NewMockRoomRepository(t)
		mockHotelRepo := mockRepo.NewMockHotelRepository(t)
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)

		factory.EXPECT().NewRoomRepository().Return(mockRoomRepo)
		factory.EXPECT().NewHotelRepository().Return(mockHotelRepo)
		factory.EXPECT().NewBookingRepository().Return(mockBookingRepo)

		mockRoomRepo.EXPECT().FindByID(ctx, roomID).Return(room, nil)
		mockHotelRepo.EXPECT().FindByID(ctx, hotelID).Return(nil, repository.ErrHotelNotFound)
	})

	booking, err := f.service.CreateBooking(ctx, uuid.New(), &usecase.CreateBookingInput{
		RoomID:   roomID,
		DateFrom: date(2026, time.October, 1),
		DateTo:   date(2026, time.October, 2),
	})

	assert.ErrorIs(t, err, domainerrors.ErrDataIntegrity)
	assert.Nil(t, booking)
}

func TestBookingService_CreateBooking_OverlapConflict(t *testing.T) {
	f := createTestBookingService(t)

	ctx := context.Background()
	hotelID := uuid.New()
	roomID := uuid.New()

	room := &entity.Room{ID: roomID, HotelID: hotelID, Price: 9900}
	hotel := &entity.Hotel{ID: hotelID}

	f.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRoomRepo := mockRepo.NewMockRoomRepository(t)
		mockHotelRepo := mockRepo.NewMockHotelRepository(t)
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)

		factory.EXPECT().NewRoomRepository().Return(mockRoomRepo)
		factory.EXPECT().NewHotelRepository().Return(mockHotelRepo)
		factory.EXPECT().NewBookingRepository().Return(mockBookingRepo)

		mockRoomRepo.EXPECT().FindByID(ctx, roomID).Return(room, nil)
		mockHotelRepo.EXPECT().FindByID(ctx, hotelID).Return(hotel, nil)
		mockBookingRepo.EXPECT().
			CreateIfAvailable(ctx, mock.AnythingOfType("*entity.Booking")).
			Return(repository.ErrBookingConflict)
	})

	booking, err := f.service.CreateBooking(ctx, uuid.New(), &usecase.CreateBookingInput{
		RoomID:   roomID,
		DateFrom: date(2026, time.October, 1),
		DateTo:   date(2026, time.October, 4),
	})

	assert.ErrorIs(t, err, domainerrors.ErrRoomUnavailable)
	assert.Nil(t, booking)
}

func TestBookingService_ListBookings_Success(t *testing.T) {
	f := createTestBookingService(t)

	ctx := context.Background()
	bookings := []*entity.Booking{
		{ID: uuid.New(), Price: 12500},
		{ID: uuid.New(), Price: 9900},
	}

	f.bookingRepo.EXPECT().FindAll(ctx).Return(bookings, nil)

	got, err := f.service.ListBookings(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBookingService_ListUserBookings_Success(t *testing.T) {
	f := createTestBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookings := []*entity.Booking{{ID: uuid.New(), UserID: userID}}

	f.bookingRepo.EXPECT().FindByUserID(ctx, userID).Return(bookings, nil)

	got, err := f.service.ListUserBookings(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, userID, got[0].UserID)
}

func TestBookingService_GetBookingQR_Success(t *testing.T) {
	f := createTestBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookingID := uuid.New()
	booking := &entity.Booking{ID: bookingID, UserID: userID}
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	f.bookingRepo.EXPECT().FindByID(ctx, bookingID).Return(booking, nil)
	f.qrcodeService.EXPECT().GenerateBookingQR(bookingID).Return(png, nil)

	got, err := f.service.GetBookingQR(ctx, userID, bookingID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestBookingService_GetBookingQR_NotFound(t *testing.T) {
	f := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()

	f.bookingRepo.EXPECT().FindByID(ctx, bookingID).Return(nil, repository.ErrBookingNotFound)

	got, err := f.service.GetBookingQR(ctx, uuid.New(), bookingID)

	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
	assert.Nil(t, got)
}

func TestBookingService_GetBookingQR_OwnerMismatch(t *testing.T) {
	f := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()
	booking := &entity.Booking{ID: bookingID, UserID: uuid.New()}

	f.bookingRepo.EXPECT().FindByID(ctx, bookingID).Return(booking, nil)

	got, err := f.service.GetBookingQR(ctx, uuid.New(), bookingID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, got)
}

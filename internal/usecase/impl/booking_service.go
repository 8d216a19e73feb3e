package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lodge/internal/delivery/context"
	"lodge/internal/domain/entity"
	domainerrors "lodge/internal/domain/errors"
	"lodge/internal/domain/repository"
	"lodge/internal/domain/service"
	"lodge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	txManager     repository.TransactionManager
	bookingRepo   repository.BookingRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	BookingRepo   repository.BookingRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewBookingService is the constructor for bookingService. It receives all dependencies as interfaces.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		txManager:     params.TxManager,
		bookingRepo:   params.BookingRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBooking books a room for the user over the half-open interval
// [DateFrom, DateTo). Room resolution, the price snapshot, the overlap check
// and the insert all happen inside one transaction, so concurrent requests for
// the same room serialize on the room row and exactly one overlapping request wins.
func (srv *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	dateFrom := normalizeDate(input.DateFrom)
	dateTo := normalizeDate(input.DateTo)

	// Check-out must be strictly after check-in; zero-night stays are rejected.
	if !dateFrom.Before(dateTo) {
		srv.log(ctx).Warn("Rejected booking with invalid date range",
			slog.Time("dateFrom", dateFrom), slog.Time("dateTo", dateTo))

		return nil, errors.Wrap(domainerrors.ErrInvalidDateRange, "date_from must be before date_to")
	}

	booking := &entity.Booking{
		UserID:   userID,
		RoomID:   input.RoomID,
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Status:   entity.BookingStatusConfirmed,
	}

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roomRepo := repoFactory.NewRoomRepository()
		hotelRepo := repoFactory.NewHotelRepository()
		bookingRepo := repoFactory.NewBookingRepository()

		room, err := roomRepo.FindByID(ctx, input.RoomID)
		if err != nil {
			if errors.Is(err, repository.ErrRoomNotFound) {
				return errors.Wrap(domainerrors.ErrRoomNotFound, "room does not exist")
			}

			return errors.Wrap(err, "failed to resolve room for booking")
		}

		// A room without its hotel is corrupt reference data, not a user error.
		if _, err := hotelRepo.FindByID(ctx, room.HotelID); err != nil {
			if errors.Is(err, repository.ErrHotelNotFound) {
				return errors.Wrap(domainerrors.ErrDataIntegrity, "room references a missing hotel")
			}

			return errors.Wrap(err, "failed to resolve hotel for booking")
		}

		// Snapshot the nightly price; later room price changes must not affect this booking.
		booking.Price = room.Price

		if err := bookingRepo.CreateIfAvailable(ctx, booking); err != nil {
			if errors.Is(err, repository.ErrBookingConflict) {
				return errors.Wrap(domainerrors.ErrRoomUnavailable, "requested dates overlap an existing booking")
			}
			if errors.Is(err, repository.ErrRoomNotFound) {
				return errors.Wrap(domainerrors.ErrRoomNotFound, "room disappeared during booking")
			}

			return errors.Wrap(err, "failed to create booking")
		}

		return nil
	}); err != nil {
		srv.log(ctx).Warn("Failed to execute booking transaction",
			slog.Any("userID", userID), slog.Any("roomID", input.RoomID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Booking created",
		slog.Any("bookingID", booking.ID),
		slog.Any("roomID", booking.RoomID),
		slog.Int64("price", booking.Price))

	return booking, nil
}

// ListBookings returns every booking in the system.
func (srv *bookingService) ListBookings(ctx context.Context) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list bookings", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

// ListUserBookings returns the bookings belonging to the given user.
func (srv *bookingService) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list user bookings", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list user bookings")
	}

	return bookings, nil
}

// GetBookingQR renders a check-in QR code for a booking owned by the user.
func (srv *bookingService) GetBookingQR(ctx context.Context, userID, bookingID uuid.UUID) ([]byte, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookingNotFound, "booking does not exist")
		}

		return nil, errors.Wrap(err, "failed to load booking for QR code")
	}

	if booking.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "booking belongs to another user")
	}

	png, err := srv.qrcodeService.GenerateBookingQR(booking.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate booking QR", slog.Any("bookingID", bookingID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate booking QR code")
	}

	return png, nil
}

// normalizeDate truncates a timestamp to date precision in UTC.
func normalizeDate(t time.Time) time.Time {
	utc := t.UTC()

	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

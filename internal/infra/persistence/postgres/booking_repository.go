package postgres

import (
	"context"

	"lodge/internal/domain/entity"
	domainerrors "lodge/internal/domain/errors"
	"lodge/internal/domain/repository"
	"lodge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// bookingRepository implements the domain's BookingRepository interface using GORM.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// CreateIfAvailable atomically checks for overlapping confirmed bookings and
// inserts the new booking. It must run inside a transaction: the SELECT ... FOR
// UPDATE on the room row serializes concurrent attempts for the same room, so
// of two overlapping requests exactly one sees a clear calendar and wins.
func (repo *bookingRepository) CreateIfAvailable(ctx context.Context, booking *entity.Booking) error {
	// Lock the parent room row for the duration of the transaction.
	var roomM model.RoomModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", booking.RoomID).
		First(&roomM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrRoomNotFound
		}

		return errors.Wrap(err, "failed to lock room for booking")
	}

	// Half-open interval overlap: existing.date_from < new.date_to AND existing.date_to > new.date_from.
	// Touching intervals (check-out == check-in) pass this check.
	var overlapping int64
	if err := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("room_id = ? AND status = ? AND date_from < ? AND date_to > ?",
			booking.RoomID, string(entity.BookingStatusConfirmed), booking.DateTo, booking.DateFrom).
		Count(&overlapping).Error; err != nil {
		return errors.Wrap(err, "failed to check booking overlap")
	}
	if overlapping > 0 {
		return repository.ErrBookingConflict
	}

	bookingM := fromBookingDomain(booking)
	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "booking references a missing user or room")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	// Update the booking entity with the generated ID and timestamp
	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt

	return nil
}

// FindByID retrieves a single booking by its unique ID.
func (repo *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var bookingM model.BookingModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	return toBookingDomain(&bookingM), nil
}

// FindAll retrieves every booking, newest first.
func (repo *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	var bookingMs []model.BookingModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&bookingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return toBookingDomainList(bookingMs), nil
}

// FindByUserID retrieves all bookings that belong to the given user, newest first.
func (repo *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	var bookingMs []model.BookingModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&bookingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookings by user")
	}

	return toBookingDomainList(bookingMs), nil
}

// --- Mapper Functions ---

// toBookingDomain converts a GORM BookingModel to a domain Booking entity.
func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:        data.ID,
		UserID:    data.UserID,
		RoomID:    data.RoomID,
		DateFrom:  data.DateFrom,
		DateTo:    data.DateTo,
		Price:     data.Price,
		Status:    entity.BookingStatus(data.Status),
		CreatedAt: data.CreatedAt,
	}
}

func toBookingDomainList(data []model.BookingModel) []*entity.Booking {
	bookings := make([]*entity.Booking, 0, len(data))
	for i := range data {
		bookings = append(bookings, toBookingDomain(&data[i]))
	}

	return bookings
}

// fromBookingDomain converts a domain Booking entity to a GORM BookingModel for persistence.
func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:       data.ID,
		UserID:   data.UserID,
		RoomID:   data.RoomID,
		DateFrom: data.DateFrom,
		DateTo:   data.DateTo,
		Price:    data.Price,
		Status:   string(data.Status),
	}
}

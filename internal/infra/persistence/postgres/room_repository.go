package postgres

import (
	"context"

	"lodge/internal/domain/entity"
	"lodge/internal/domain/repository"
	"lodge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roomRepository implements the domain's RoomRepository interface using GORM.
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository is the constructor for roomRepository.
func NewRoomRepository(db *gorm.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

// FindByID retrieves a single room by its unique ID.
func (repo *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var roomM model.RoomModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&roomM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find room by id")
	}

	return toRoomDomain(&roomM), nil
}

// FindByHotelID retrieves all rooms belonging to a hotel.
func (repo *roomRepository) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error) {
	var roomMs []model.RoomModel
	if err := repo.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Order("created_at").Find(&roomMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rooms by hotel")
	}

	rooms := make([]*entity.Room, 0, len(roomMs))
	for i := range roomMs {
		rooms = append(rooms, toRoomDomain(&roomMs[i]))
	}

	return rooms, nil
}

// toRoomDomain converts a GORM RoomModel to a domain Room entity.
func toRoomDomain(data *model.RoomModel) *entity.Room {
	if data == nil {
		return nil
	}

	return &entity.Room{
		ID:          data.ID,
		HotelID:     data.HotelID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Quantity:    data.Quantity,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

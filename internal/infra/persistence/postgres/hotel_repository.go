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

// hotelRepository implements the domain's HotelRepository interface using GORM.
type hotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository is the constructor for hotelRepository.
func NewHotelRepository(db *gorm.DB) repository.HotelRepository {
	return &hotelRepository{db: db}
}

// FindByID retrieves a single hotel by its unique ID.
func (repo *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	var hotelM model.HotelModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&hotelM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHotelNotFound
		}

		return nil, errors.Wrap(err, "failed to find hotel by id")
	}

	return toHotelDomain(&hotelM), nil
}

// FindAll retrieves every hotel, ordered by creation time.
func (repo *hotelRepository) FindAll(ctx context.Context) ([]*entity.Hotel, error) {
	var hotelMs []model.HotelModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&hotelMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list hotels")
	}

	hotels := make([]*entity.Hotel, 0, len(hotelMs))
	for i := range hotelMs {
		hotels = append(hotels, toHotelDomain(&hotelMs[i]))
	}

	return hotels, nil
}

// toHotelDomain converts a GORM HotelModel to a domain Hotel entity.
func toHotelDomain(data *model.HotelModel) *entity.Hotel {
	if data == nil {
		return nil
	}

	return &entity.Hotel{
		ID:        data.ID,
		Title:     data.Title,
		Location:  data.Location,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

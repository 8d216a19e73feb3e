package postgres

import (
	"context"

	"lodge/internal/domain/entity"
	domainerrors "lodge/internal/domain/errors"
	"lodge/internal/domain/repository"
	"lodge/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// facilityRepository implements the domain's FacilityRepository interface using GORM.
type facilityRepository struct {
	db *gorm.DB
}

// NewFacilityRepository is the constructor for facilityRepository.
func NewFacilityRepository(db *gorm.DB) repository.FacilityRepository {
	return &facilityRepository{db: db}
}

// Create persists a new facility.
func (repo *facilityRepository) Create(ctx context.Context, facility *entity.Facility) error {
	facilityM := &model.FacilityModel{
		Title: facility.Title,
	}

	if err := repo.db.WithContext(ctx).Create(facilityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrFacilityAlreadyExists.WrapMessage("facility title already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create facility")
	}

	facility.ID = facilityM.ID
	facility.CreatedAt = facilityM.CreatedAt

	return nil
}

// FindAll retrieves every facility, ordered by title.
func (repo *facilityRepository) FindAll(ctx context.Context) ([]*entity.Facility, error) {
	var facilityMs []model.FacilityModel
	if err := repo.db.WithContext(ctx).Order("title").Find(&facilityMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list facilities")
	}

	facilities := make([]*entity.Facility, 0, len(facilityMs))
	for i := range facilityMs {
		facilities = append(facilities, toFacilityDomain(&facilityMs[i]))
	}

	return facilities, nil
}

// toFacilityDomain converts a GORM FacilityModel to a domain Facility entity.
func toFacilityDomain(data *model.FacilityModel) *entity.Facility {
	if data == nil {
		return nil
	}

	return &entity.Facility{
		ID:        data.ID,
		Title:     data.Title,
		CreatedAt: data.CreatedAt,
	}
}

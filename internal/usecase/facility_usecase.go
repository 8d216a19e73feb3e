package usecase

import (
	"context"

	"lodge/internal/domain/entity"
)

// CreateFacilityInput defines the data required to create a facility.
type CreateFacilityInput struct {
	Title string
}

// FacilityUsecase defines the interface for facility-related business operations.
type FacilityUsecase interface {
	// CreateFacility persists a new facility and emits a facility-created
	// event after the transaction commits. Event delivery is best-effort and
	// never fails the request.
	CreateFacility(ctx context.Context, input *CreateFacilityInput) (*entity.Facility, error)

	// ListFacilities returns every facility.
	ListFacilities(ctx context.Context) ([]*entity.Facility, error)
}

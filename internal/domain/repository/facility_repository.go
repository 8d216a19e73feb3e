package repository

import (
	"context"

	"lodge/internal/domain/entity"
)

// FacilityRepository defines the persistence operations for facilities.
type FacilityRepository interface {
	// Create persists a new facility and fills in the generated ID.
	// A taken title surfaces as the facility-already-exists domain error.
	Create(ctx context.Context, facility *entity.Facility) error

	// FindAll retrieves every facility.
	FindAll(ctx context.Context) ([]*entity.Facility, error)
}

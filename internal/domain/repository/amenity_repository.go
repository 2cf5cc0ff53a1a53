package repository

import (
	"context"

	"homio/internal/domain/entity"
	"homio/internal/errors"
)

// ErrAmenityNotFound is returned when an amenity is not found.
var ErrAmenityNotFound = errors.New("amenity not found")

// AmenityRepository defines the operations for the amenity catalog.
// Amenity uniqueness is by name.
type AmenityRepository interface {
	// FindAll retrieves the whole catalog ordered by name.
	FindAll(ctx context.Context) ([]*entity.Amenity, error)

	// FindOrCreateByName retrieves an amenity by its exact name, creating it
	// when missing.
	FindOrCreateByName(ctx context.Context, name string) (*entity.Amenity, error)
}

package repository

import (
	"context"

	"homio/internal/domain/entity"
	"homio/internal/errors"

	"github.com/google/uuid"
)

// ErrUnitNotFound is returned when a unit is not found.
var ErrUnitNotFound = errors.New("unit not found")

// UnitPatch is a sparse unit update: only non-nil fields are applied. It is
// the payload of both the single-unit update and the mass-edit bulk update.
type UnitPatch struct {
	Status     *entity.UnitStatus
	Price      *float64
	Floor      *int
	Bedrooms   *int
	Bathrooms  *int
	View       *string
	Features   *[]string
	BuildingID *uuid.UUID
	LayoutID   *uuid.UUID
}

// Empty reports whether the patch carries no field at all.
func (p UnitPatch) Empty() bool {
	return p.Status == nil && p.Price == nil && p.Floor == nil &&
		p.Bedrooms == nil && p.Bathrooms == nil && p.View == nil &&
		p.Features == nil && p.BuildingID == nil && p.LayoutID == nil
}

// UnitRepository defines the standard operations for unit persistence.
type UnitRepository interface {
	// Create persists a new unit.
	Create(ctx context.Context, unit *entity.Unit) error

	// FindByID retrieves a unit with its layout by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error)

	// FindByProject retrieves all units of a project with their layouts,
	// ordered by floor and number. This is the data source of the mass-edit
	// surface's in-memory list.
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Unit, error)

	// ApplyPatch applies the set fields of a sparse patch to one unit.
	ApplyPatch(ctx context.Context, id uuid.UUID, patch UnitPatch) error

	// Delete removes a unit by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

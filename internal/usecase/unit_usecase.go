package usecase

import (
	"context"

	"homio/internal/domain/entity"
	"homio/internal/domain/repository"
	"homio/internal/domain/search"

	"github.com/google/uuid"
)

// UnitInput is the payload of unit creation.
type UnitInput struct {
	ProjectID  uuid.UUID  `json:"projectId" validate:"required"`
	BuildingID *uuid.UUID `json:"buildingId"`
	LayoutID   *uuid.UUID `json:"layoutId"`
	Name       string     `json:"name" validate:"required"`
	Number     string     `json:"number"`
	Status     string     `json:"status" validate:"omitempty,oneof=AVAILABLE RESERVED SOLD"`
	Floor      int        `json:"floor"`
	Price      float64    `json:"price" validate:"min=0"`
	Bedrooms   int        `json:"bedrooms" validate:"min=0"`
	Bathrooms  int        `json:"bathrooms" validate:"min=0"`
	Area       *float64   `json:"area"`
	View       string     `json:"view"`
	Features   []string   `json:"features"`
}

// BulkResult reports the outcome of a settle-all bulk operation: every
// selected unit is attempted, failures never abort the rest.
type BulkResult struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// UnitUsecase defines the interface for unit management use cases
type UnitUsecase interface {
	// CreateUnit persists a new unit under an existing project.
	CreateUnit(ctx context.Context, input UnitInput) (*entity.Unit, error)

	// GetUnit retrieves a unit with its layout.
	GetUnit(ctx context.Context, id uuid.UUID) (*entity.Unit, error)

	// ListProjectUnits retrieves a project's units, optionally narrowed by
	// the same filter dimensions the search surface accepts. The filtering
	// runs in memory over the full list, matching the behavior of the
	// client-held table it mirrors.
	ListProjectUnits(ctx context.Context, projectID uuid.UUID, filters search.FilterSet) ([]*entity.Unit, error)

	// UpdateUnit applies a sparse patch to one unit.
	UpdateUnit(ctx context.Context, id uuid.UUID, patch repository.UnitPatch) (*entity.Unit, error)

	// DeleteUnit removes one unit.
	DeleteUnit(ctx context.Context, id uuid.UUID) error

	// BulkUpdateUnits applies one sparse patch to every selected unit and
	// reports how many succeeded and how many failed.
	BulkUpdateUnits(ctx context.Context, ids []uuid.UUID, patch repository.UnitPatch) (*BulkResult, error)

	// BulkDeleteUnits deletes every selected unit and reports how many
	// succeeded and how many failed.
	BulkDeleteUnits(ctx context.Context, ids []uuid.UUID) (*BulkResult, error)
}

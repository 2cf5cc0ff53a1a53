package impl

import (
	"context"
	"log/slog"
	"sync/atomic"

	"homio/internal/domain/entity"
	domainerrors "homio/internal/domain/errors"
	"homio/internal/domain/repository"
	"homio/internal/domain/search"
	"homio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// bulkConcurrency caps the per-unit fan-out of bulk operations.
const bulkConcurrency = 8

type unitService struct {
	unitRepo    repository.UnitRepository
	projectRepo repository.ProjectRepository
	logger      *slog.Logger
}

// UnitServiceParams holds dependencies for UnitService, injected by Fx.
type UnitServiceParams struct {
	fx.In

	UnitRepo    repository.UnitRepository
	ProjectRepo repository.ProjectRepository
	Logger      *slog.Logger
}

// NewUnitService creates a new unit service instance
func NewUnitService(params UnitServiceParams) usecase.UnitUsecase {
	return &unitService{
		unitRepo:    params.UnitRepo,
		projectRepo: params.ProjectRepo,
		logger:      params.Logger,
	}
}

// CreateUnit persists a new unit under an existing project.
func (s *unitService) CreateUnit(ctx context.Context, input usecase.UnitInput) (*entity.Unit, error) {
	if _, err := s.projectRepo.FindByID(ctx, input.ProjectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	status := entity.UnitStatus(input.Status)
	if status == "" {
		status = entity.UnitStatusAvailable
	}

	unit := &entity.Unit{
		ProjectID:  input.ProjectID,
		BuildingID: input.BuildingID,
		LayoutID:   input.LayoutID,
		Name:       input.Name,
		Number:     input.Number,
		Status:     status,
		Floor:      input.Floor,
		Price:      input.Price,
		Bedrooms:   input.Bedrooms,
		Bathrooms:  input.Bathrooms,
		Area:       input.Area,
		View:       input.View,
		Features:   input.Features,
	}

	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, errors.Wrap(err, "failed to create unit")
	}

	return unit, nil
}

// GetUnit retrieves a unit with its layout.
func (s *unitService) GetUnit(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUnitNotFound) {
			return nil, domainerrors.ErrUnitNotFound
		}

		return nil, errors.Wrap(err, "failed to find unit")
	}

	return unit, nil
}

// ListProjectUnits retrieves a project's units, optionally narrowed by the
// search filter dimensions. The narrowing runs in memory over the full list
// through the same predicate representation the store queries use, which
// keeps this view and the public search behaviorally consistent.
func (s *unitService) ListProjectUnits(ctx context.Context, projectID uuid.UUID, filters search.FilterSet) ([]*entity.Unit, error) {
	units, err := s.unitRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list project units")
	}

	// Built under the project type so unlisted (price 0) units stay visible;
	// the listed-only rule applies to the public unit search, not here.
	conds, err := search.Build(search.TypeProjects, filters)
	if err != nil {
		return nil, err
	}
	if conds.Empty() {
		return units, nil
	}

	return search.Filter(units, conds.Unit), nil
}

// UpdateUnit applies a sparse patch to one unit.
func (s *unitService) UpdateUnit(ctx context.Context, id uuid.UUID, patch repository.UnitPatch) (*entity.Unit, error) {
	if patch.Empty() {
		return nil, domainerrors.ErrEmptyPatch
	}

	if err := s.unitRepo.ApplyPatch(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrUnitNotFound) {
			return nil, domainerrors.ErrUnitNotFound
		}

		return nil, errors.Wrap(err, "failed to patch unit")
	}

	return s.GetUnit(ctx, id)
}

// DeleteUnit removes one unit.
func (s *unitService) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	if err := s.unitRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUnitNotFound) {
			return domainerrors.ErrUnitNotFound
		}

		return errors.Wrap(err, "failed to delete unit")
	}

	return nil
}

// BulkUpdateUnits applies one sparse patch to every selected unit. The
// operation settles all selections: a failing unit is counted and skipped,
// never aborting the rest.
func (s *unitService) BulkUpdateUnits(ctx context.Context, ids []uuid.UUID, patch repository.UnitPatch) (*usecase.BulkResult, error) {
	if len(ids) == 0 {
		return nil, domainerrors.ErrNoUnitsSelected
	}
	if patch.Empty() {
		return nil, domainerrors.ErrEmptyPatch
	}

	return s.settleAll(ctx, ids, "bulk unit update", func(ctx context.Context, id uuid.UUID) error {
		return s.unitRepo.ApplyPatch(ctx, id, patch)
	})
}

// BulkDeleteUnits deletes every selected unit with the same settle-all
// semantics as the bulk update.
func (s *unitService) BulkDeleteUnits(ctx context.Context, ids []uuid.UUID) (*usecase.BulkResult, error) {
	if len(ids) == 0 {
		return nil, domainerrors.ErrNoUnitsSelected
	}

	return s.settleAll(ctx, ids, "bulk unit delete", func(ctx context.Context, id uuid.UUID) error {
		return s.unitRepo.Delete(ctx, id)
	})
}

// settleAll fans the operation out over the selection with bounded
// concurrency and tallies outcomes instead of propagating errors.
func (s *unitService) settleAll(ctx context.Context, ids []uuid.UUID, operation string, apply func(context.Context, uuid.UUID) error) (*usecase.BulkResult, error) {
	var successful, failed atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(bulkConcurrency)
	for _, id := range ids {
		group.Go(func() error {
			if err := apply(groupCtx, id); err != nil {
				failed.Add(1)
				s.logger.WarnContext(groupCtx, operation+" failed for unit",
					slog.String("unitID", id.String()),
					slog.String("error", err.Error()),
				)

				return nil
			}
			successful.Add(1)

			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = group.Wait()

	return &usecase.BulkResult{
		Successful: int(successful.Load()),
		Failed:     int(failed.Load()),
	}, nil
}

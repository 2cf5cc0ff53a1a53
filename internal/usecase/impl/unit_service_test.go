package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"homio/internal/domain/entity"
	domainerrors "homio/internal/domain/errors"
	"homio/internal/domain/repository"
	"homio/internal/domain/search"
	mockRepo "homio/internal/mocks/repository"
	"homio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUnitService(t *testing.T) (usecase.UnitUsecase, *mockRepo.MockUnitRepository, *mockRepo.MockProjectRepository) {
	t.Helper()

	unitRepo := mockRepo.NewMockUnitRepository(t)
	projectRepo := mockRepo.NewMockProjectRepository(t)
	service := NewUnitService(UnitServiceParams{
		UnitRepo:    unitRepo,
		ProjectRepo: projectRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, unitRepo, projectRepo
}

func TestUnitService_CreateUnit(t *testing.T) {
	service, unitRepo, projectRepo := newUnitService(t)
	ctx := context.Background()
	projectID := uuid.New()

	projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(&entity.Project{ID: projectID}, nil)
	unitRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Unit")).
		RunAndReturn(func(_ context.Context, unit *entity.Unit) error {
			assert.Equal(t, entity.UnitStatusAvailable, unit.Status)
			unit.ID = uuid.New()

			return nil
		})

	unit, err := service.CreateUnit(ctx, usecase.UnitInput{
		ProjectID: projectID,
		Name:      "A-101",
		Price:     250000,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, unit.ID)
	assert.Equal(t, entity.UnitStatusAvailable, unit.Status)
}

func TestUnitService_CreateUnit_ProjectMissing(t *testing.T) {
	service, _, projectRepo := newUnitService(t)
	ctx := context.Background()
	projectID := uuid.New()

	projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(nil, repository.ErrProjectNotFound)

	unit, err := service.CreateUnit(ctx, usecase.UnitInput{ProjectID: projectID})
	require.Error(t, err)
	assert.Nil(t, unit)
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestUnitService_ListProjectUnits_FiltersInMemory(t *testing.T) {
	service, unitRepo, _ := newUnitService(t)
	ctx := context.Background()
	projectID := uuid.New()

	units := []*entity.Unit{
		{Name: "A-101", Bedrooms: 0, Price: 250000},
		{Name: "A-202", Bedrooms: 0, Price: 0}, // unlisted, must stay visible here
		{Name: "A-1204", Bedrooms: 4, Price: 800000},
	}
	unitRepo.EXPECT().FindByProject(ctx, projectID).Return(units, nil)

	filtered, err := service.ListProjectUnits(ctx, projectID, search.FilterSet{
		Bedrooms: "st",
	})
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "A-101", filtered[0].Name)
	assert.Equal(t, "A-202", filtered[1].Name)
}

func TestUnitService_ListProjectUnits_CombinedFilters(t *testing.T) {
	service, unitRepo, _ := newUnitService(t)
	ctx := context.Background()
	projectID := uuid.New()

	units := []*entity.Unit{
		{Name: "A-101", Bedrooms: 0, Price: 250000},
		{Name: "A-305", Bedrooms: 0, Price: 450000},
		{Name: "A-410", Bedrooms: 1, Price: 280000},
		{Name: "A-1204", Bedrooms: 4, Price: 800000},
		{Name: "B-207", Bedrooms: 2, Price: 300000},
	}
	unitRepo.EXPECT().FindByProject(ctx, projectID).Return(units, nil)

	filtered, err := service.ListProjectUnits(ctx, projectID, search.FilterSet{
		Bedrooms: "st",
		PriceMax: "300000",
	})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "A-101", filtered[0].Name)
}

func TestUnitService_ListProjectUnits_NoFiltersReturnsAll(t *testing.T) {
	service, unitRepo, _ := newUnitService(t)
	ctx := context.Background()
	projectID := uuid.New()

	units := []*entity.Unit{{Name: "A-101"}, {Name: "A-202"}}
	unitRepo.EXPECT().FindByProject(ctx, projectID).Return(units, nil)

	all, err := service.ListProjectUnits(ctx, projectID, search.FilterSet{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUnitService_UpdateUnit(t *testing.T) {
	service, unitRepo, _ := newUnitService(t)
	ctx := context.Background()
	unitID := uuid.New()

	price := 275000.0
	patch := repository.UnitPatch{Price: &price}

	unitRepo.EXPECT().ApplyPatch(ctx, unitID, patch).Return(nil)
	unitRepo.EXPECT().
		FindByID(ctx, unitID).
		Return(&entity.Unit{ID: unitID, Price: price}, nil)

	unit, err := service.UpdateUnit(ctx, unitID, patch)
	require.NoError(t, err)
	assert.Equal(t, price, unit.Price)
}

func TestUnitService_UpdateUnit_EmptyPatch(t *testing.T) {
	service, _, _ := newUnitService(t)

	unit, err := service.UpdateUnit(context.Background(), uuid.New(), repository.UnitPatch{})
	require.Error(t, err)
	assert.Nil(t, unit)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyPatch)
}

func TestUnitService_BulkUpdateUnits_SettlesAll(t *testing.T) {
	service, unitRepo, _ := newUnitService(t)
	ctx := context.Background()

	good1, bad, good2 := uuid.New(), uuid.New(), uuid.New()
	status := entity.UnitStatusReserved
	patch := repository.UnitPatch{Status: &status}

	unitRepo.EXPECT().ApplyPatch(mock.Anything, good1, patch).Return(nil)
	unitRepo.EXPECT().ApplyPatch(mock.Anything, bad, patch).Return(repository.ErrUnitNotFound)
	unitRepo.EXPECT().ApplyPatch(mock.Anything, good2, patch).Return(nil)

	result, err := service.BulkUpdateUnits(ctx, []uuid.UUID{good1, bad, good2}, patch)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Successful)
	assert.Equal(t, 1, result.Failed)
}

func TestUnitService_BulkUpdateUnits_Guards(t *testing.T) {
	service, _, _ := newUnitService(t)
	ctx := context.Background()

	status := entity.UnitStatusSold
	_, err := service.BulkUpdateUnits(ctx, nil, repository.UnitPatch{Status: &status})
	assert.ErrorIs(t, err, domainerrors.ErrNoUnitsSelected)

	_, err = service.BulkUpdateUnits(ctx, []uuid.UUID{uuid.New()}, repository.UnitPatch{})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyPatch)
}

func TestUnitService_BulkDeleteUnits(t *testing.T) {
	service, unitRepo, _ := newUnitService(t)
	ctx := context.Background()

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	unitRepo.EXPECT().Delete(mock.Anything, ids[0]).Return(nil)
	unitRepo.EXPECT().Delete(mock.Anything, ids[1]).Return(repository.ErrUnitNotFound)

	result, err := service.BulkDeleteUnits(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Successful)
	assert.Equal(t, 1, result.Failed)
}

func TestUnitService_BulkDeleteUnits_EmptySelection(t *testing.T) {
	service, _, _ := newUnitService(t)

	result, err := service.BulkDeleteUnits(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrNoUnitsSelected)
}

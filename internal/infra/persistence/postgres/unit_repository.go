package postgres

import (
	"context"

	"homio/internal/domain/entity"
	"homio/internal/domain/repository"
	"homio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// unitRepository implements the repository.UnitRepository interface.
type unitRepository struct {
	db *gorm.DB
}

// NewUnitRepository is the constructor for unitRepository.
func NewUnitRepository(db *gorm.DB) repository.UnitRepository {
	return &unitRepository{
		db: db,
	}
}

// Create persists a new unit with its features.
func (repo *unitRepository) Create(ctx context.Context, unit *entity.Unit) error {
	unitM := fromUnitDomain(unit)

	if err := repo.db.WithContext(ctx).Create(unitM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProjectNotFound
		}

		return errors.Wrap(err, "failed to create unit")
	}

	// Update the entity with generated values
	unit.ID = unitM.ID
	unit.CreatedAt = unitM.CreatedAt
	unit.UpdatedAt = unitM.UpdatedAt

	return nil
}

// FindByID retrieves a unit with its layout by its unique ID.
func (repo *unitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	var unitM model.UnitModel

	if err := repo.db.WithContext(ctx).
		Preload("Layout").
		Preload("Features").
		Where("id = ?", id).
		First(&unitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUnitNotFound
		}

		return nil, errors.Wrap(err, "failed to find unit by ID")
	}

	return toUnitDomain(&unitM), nil
}

// FindByProject retrieves all units of a project with their layouts, ordered
// by floor and number.
func (repo *unitRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Unit, error) {
	var unitModels []*model.UnitModel

	if err := repo.db.WithContext(ctx).
		Preload("Layout").
		Preload("Features").
		Where("project_id = ?", projectID).
		Order("floor ASC, number ASC").
		Find(&unitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find units by project")
	}

	units := make([]*entity.Unit, 0, len(unitModels))
	for _, unitM := range unitModels {
		units = append(units, toUnitDomain(unitM))
	}

	return units, nil
}

// ApplyPatch applies the set fields of a sparse patch to one unit. The
// features collection, when present, is replaced as a whole.
func (repo *unitRepository) ApplyPatch(ctx context.Context, id uuid.UUID, patch repository.UnitPatch) error {
	updates := map[string]any{}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Floor != nil {
		updates["floor"] = *patch.Floor
	}
	if patch.Bedrooms != nil {
		updates["bedrooms"] = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		updates["bathrooms"] = *patch.Bathrooms
	}
	if patch.View != nil {
		updates["view"] = *patch.View
	}
	if patch.BuildingID != nil {
		updates["building_id"] = *patch.BuildingID
	}
	if patch.LayoutID != nil {
		updates["layout_id"] = *patch.LayoutID
	}

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.UnitModel{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			if isForeignKeyConstraintViolation(result.Error) {
				return errors.Wrap(result.Error, "invalid building or layout reference")
			}

			return errors.Wrap(result.Error, "failed to patch unit")
		}
		if result.RowsAffected == 0 {
			return repository.ErrUnitNotFound
		}
	} else if patch.Features != nil {
		// Features-only patch: the unit must still exist.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.UnitModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check unit existence")
		}
		if count == 0 {
			return repository.ErrUnitNotFound
		}
	}

	if patch.Features != nil {
		if err := repo.db.WithContext(ctx).
			Where("unit_id = ?", id).
			Delete(&model.UnitFeatureModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear unit features")
		}

		features := make([]*model.UnitFeatureModel, 0, len(*patch.Features))
		for _, name := range *patch.Features {
			features = append(features, &model.UnitFeatureModel{UnitID: id, Name: name})
		}
		if len(features) > 0 {
			if err := repo.db.WithContext(ctx).Create(features).Error; err != nil {
				return errors.Wrap(err, "failed to save unit features")
			}
		}
	}

	return nil
}

// Delete removes a unit by its ID.
func (repo *unitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("unit_id = ?", id).
		Delete(&model.UnitFeatureModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear unit features")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UnitModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete unit")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUnitNotFound
	}

	return nil
}

// --- Mappers: Domain Entity <-> GORM Model ---

func fromUnitDomain(unit *entity.Unit) *model.UnitModel {
	unitM := &model.UnitModel{
		ID:         unit.ID,
		ProjectID:  unit.ProjectID,
		BuildingID: unit.BuildingID,
		LayoutID:   unit.LayoutID,
		Name:       unit.Name,
		Number:     unit.Number,
		Status:     string(unit.Status),
		Floor:      unit.Floor,
		Price:      unit.Price,
		Bedrooms:   unit.Bedrooms,
		Bathrooms:  unit.Bathrooms,
		Area:       unit.Area,
		View:       unit.View,
		CreatedAt:  unit.CreatedAt,
		UpdatedAt:  unit.UpdatedAt,
	}

	for _, name := range unit.Features {
		unitM.Features = append(unitM.Features, &model.UnitFeatureModel{
			UnitID: unit.ID,
			Name:   name,
		})
	}

	return unitM
}

func toUnitDomain(unitM *model.UnitModel) *entity.Unit {
	unit := &entity.Unit{
		ID:         unitM.ID,
		ProjectID:  unitM.ProjectID,
		BuildingID: unitM.BuildingID,
		LayoutID:   unitM.LayoutID,
		Name:       unitM.Name,
		Number:     unitM.Number,
		Status:     entity.UnitStatus(unitM.Status),
		Floor:      unitM.Floor,
		Price:      unitM.Price,
		Bedrooms:   unitM.Bedrooms,
		Bathrooms:  unitM.Bathrooms,
		Area:       unitM.Area,
		View:       unitM.View,
		CreatedAt:  unitM.CreatedAt,
		UpdatedAt:  unitM.UpdatedAt,
	}

	for _, featureM := range unitM.Features {
		unit.Features = append(unit.Features, featureM.Name)
	}
	if unitM.Layout != nil {
		unit.Layout = toLayoutDomain(unitM.Layout)
	}

	return unit
}

func toLayoutDomain(layoutM *model.LayoutModel) *entity.Layout {
	return &entity.Layout{
		ID:           layoutM.ID,
		ProjectID:    layoutM.ProjectID,
		Name:         layoutM.Name,
		Type:         layoutM.Type,
		Bedrooms:     layoutM.Bedrooms,
		Bathrooms:    layoutM.Bathrooms,
		TotalArea:    layoutM.TotalArea,
		HasPets:      layoutM.HasPets,
		HasSmartHome: layoutM.HasSmartHome,
		HasParking:   layoutM.HasParking,
		HasBalcony:   layoutM.HasBalcony,
	}
}

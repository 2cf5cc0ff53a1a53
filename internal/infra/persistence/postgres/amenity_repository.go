package postgres

import (
	"context"

	"homio/internal/domain/entity"
	"homio/internal/domain/repository"
	"homio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// amenityRepository implements the repository.AmenityRepository interface.
type amenityRepository struct {
	db *gorm.DB
}

// NewAmenityRepository is the constructor for amenityRepository.
func NewAmenityRepository(db *gorm.DB) repository.AmenityRepository {
	return &amenityRepository{
		db: db,
	}
}

// FindAll retrieves the whole catalog ordered by name.
func (repo *amenityRepository) FindAll(ctx context.Context) ([]*entity.Amenity, error) {
	var amenityModels []*model.AmenityModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&amenityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list amenities")
	}

	amenities := make([]*entity.Amenity, 0, len(amenityModels))
	for _, amenityM := range amenityModels {
		amenities = append(amenities, toAmenityDomain(amenityM))
	}

	return amenities, nil
}

// FindOrCreateByName retrieves an amenity by its exact name, creating it when
// missing. The insert ignores conflicts so concurrent callers converge on the
// same row.
func (repo *amenityRepository) FindOrCreateByName(ctx context.Context, name string) (*entity.Amenity, error) {
	amenityM := &model.AmenityModel{Name: name}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(amenityM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create amenity")
	}

	var found model.AmenityModel
	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAmenityNotFound
		}

		return nil, errors.Wrap(err, "failed to find amenity by name")
	}

	return toAmenityDomain(&found), nil
}

// --- Mappers: Domain Entity <-> GORM Model ---

func fromAmenityDomain(amenity *entity.Amenity) *model.AmenityModel {
	return &model.AmenityModel{
		ID:   amenity.ID,
		Name: amenity.Name,
	}
}

func toAmenityDomain(amenityM *model.AmenityModel) *entity.Amenity {
	return &entity.Amenity{
		ID:   amenityM.ID,
		Name: amenityM.Name,
	}
}

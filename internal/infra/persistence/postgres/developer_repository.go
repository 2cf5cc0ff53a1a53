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

// developerRepository implements the repository.DeveloperRepository interface.
type developerRepository struct {
	db *gorm.DB
}

// NewDeveloperRepository is the constructor for developerRepository.
func NewDeveloperRepository(db *gorm.DB) repository.DeveloperRepository {
	return &developerRepository{
		db: db,
	}
}

// FindByID retrieves a developer with its translations.
func (repo *developerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Developer, error) {
	var developerM model.DeveloperModel

	if err := repo.db.WithContext(ctx).
		Preload("Translations").
		Where("id = ?", id).
		First(&developerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeveloperNotFound
		}

		return nil, errors.Wrap(err, "failed to find developer by ID")
	}

	return toDeveloperDomain(&developerM), nil
}

// Create persists a new developer with its translations.
func (repo *developerRepository) Create(ctx context.Context, developer *entity.Developer) error {
	developerM := fromDeveloperDomain(developer)

	if err := repo.db.WithContext(ctx).Create(developerM).Error; err != nil {
		return errors.Wrap(err, "failed to create developer")
	}

	// Update the entity with generated values
	developer.ID = developerM.ID
	developer.CreatedAt = developerM.CreatedAt
	developer.UpdatedAt = developerM.UpdatedAt

	return nil
}

// --- Mappers: Domain Entity <-> GORM Model ---

func fromDeveloperDomain(developer *entity.Developer) *model.DeveloperModel {
	developerM := &model.DeveloperModel{
		ID:              developer.ID,
		Slug:            developer.Slug,
		EstablishedYear: developer.EstablishedYear,
		CreatedAt:       developer.CreatedAt,
		UpdatedAt:       developer.UpdatedAt,
	}

	for _, tr := range developer.Translations {
		developerM.Translations = append(developerM.Translations, &model.DeveloperTranslationModel{
			ID:          tr.ID,
			DeveloperID: tr.DeveloperID,
			Language:    tr.Language,
			Name:        tr.Name,
			Description: tr.Description,
		})
	}

	return developerM
}

func toDeveloperDomain(developerM *model.DeveloperModel) *entity.Developer {
	developer := &entity.Developer{
		ID:              developerM.ID,
		Slug:            developerM.Slug,
		EstablishedYear: developerM.EstablishedYear,
		CreatedAt:       developerM.CreatedAt,
		UpdatedAt:       developerM.UpdatedAt,
	}

	for _, trM := range developerM.Translations {
		developer.Translations = append(developer.Translations, &entity.DeveloperTranslation{
			ID:          trM.ID,
			DeveloperID: trM.DeveloperID,
			Language:    trM.Language,
			Name:        trM.Name,
			Description: trM.Description,
		})
	}

	return developer
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"homio/internal/domain/entity"
	domainerrors "homio/internal/domain/errors"
	"homio/internal/domain/repository"
	"homio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// projectPreloads lists the relations a hydrated project carries.
var projectPreloads = []string{
	"Developer",
	"Developer.Translations",
	"Location",
	"Pricing",
	"Yield",
	"Buildings",
	"Layouts",
	"Amenities",
	"Media",
	"Documents",
	"Translations",
	"Units",
	"Units.Layout",
	"Units.Features",
}

// projectRepository implements the repository.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// Create persists a new project aggregate together with its owned relations.
func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeveloperNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	// Update the entity with generated values
	project.ID = projectM.ID
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// FindByID retrieves a fully hydrated project by its unique ID.
func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindBySlug retrieves a fully hydrated project by its URL slug.
func (repo *projectRepository) FindBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *projectRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Project, error) {
	var projectM model.ProjectModel

	query := repo.db.WithContext(ctx)
	for _, preload := range projectPreloads {
		query = query.Preload(preload)
	}

	if err := query.Where(cond, arg).First(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	return toProjectDomain(&projectM), nil
}

// List retrieves a page of projects ordered by creation time descending,
// together with the total count.
func (repo *projectRepository) List(ctx context.Context, offset, limit int) ([]*entity.Project, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count projects")
	}

	var projectModels []*model.ProjectModel
	query := repo.db.WithContext(ctx)
	for _, preload := range projectPreloads {
		query = query.Preload(preload)
	}

	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&projectModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list projects")
	}

	projects := make([]*entity.Project, 0, len(projectModels))
	for _, projectM := range projectModels {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, total, nil
}

// Update modifies the project's own columns and replaces its translations and
// amenity set. Owned collections other than those two are managed through
// their own repositories.
func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	result := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("id = ?", project.ID).
		Select("slug", "type", "status", "class", "construction_status",
			"land_area", "building_count", "unit_count",
			"transport_score", "amenities_score", "safety_score", "developer_id").
		Updates(projectM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSlug
		}

		return errors.Wrap(result.Error, "failed to update project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	// Replace the whole translation set.
	if err := repo.db.WithContext(ctx).
		Where("project_id = ?", project.ID).
		Delete(&model.ProjectTranslationModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear project translations")
	}
	if len(projectM.Translations) > 0 {
		for _, tr := range projectM.Translations {
			tr.ProjectID = project.ID
		}
		if err := repo.db.WithContext(ctx).Create(projectM.Translations).Error; err != nil {
			return errors.Wrap(err, "failed to save project translations")
		}
	}

	// Replace the amenity association set.
	projectM.ID = project.ID
	if err := repo.db.WithContext(ctx).
		Model(projectM).
		Association("Amenities").
		Replace(projectM.Amenities); err != nil {
		return errors.Wrap(err, "failed to replace project amenities")
	}

	// Preserve the location row's identity when updating in place.
	if projectM.Location != nil {
		projectM.Location.ProjectID = project.ID
		if err := repo.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "project_id"}},
				UpdateAll: true,
			}).
			Create(projectM.Location).Error; err != nil {
			return errors.Wrap(err, "failed to save project location")
		}
	}

	return nil
}

// Delete removes a project and cascades to everything it owns.
func (repo *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&model.ProjectModel{ID: id})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

// --- Mappers: Domain Entity <-> GORM Model ---

func fromProjectDomain(project *entity.Project) *model.ProjectModel {
	projectM := &model.ProjectModel{
		ID:                 project.ID,
		Slug:               project.Slug,
		Type:               string(project.Type),
		Status:             string(project.Status),
		Class:              project.Class,
		ConstructionStatus: string(project.ConstructionStatus),
		LandArea:           project.LandArea,
		BuildingCount:      project.BuildingCount,
		UnitCount:          project.UnitCount,
		TransportScore:     project.TransportScore,
		AmenitiesScore:     project.AmenitiesScore,
		SafetyScore:        project.SafetyScore,
		DeveloperID:        project.DeveloperID,
		CreatedAt:          project.CreatedAt,
		UpdatedAt:          project.UpdatedAt,
	}

	if project.Location != nil {
		projectM.Location = fromLocationDomain(project.Location)
	}
	if project.Pricing != nil {
		projectM.Pricing = &model.PricingModel{
			ID:          project.Pricing.ID,
			ProjectID:   project.Pricing.ProjectID,
			BasePrice:   project.Pricing.BasePrice,
			PricePerSqm: project.Pricing.PricePerSqm,
			Currency:    project.Pricing.Currency,
		}
	}
	if project.Yield != nil {
		projectM.Yield = &model.YieldModel{
			ID:            project.Yield.ID,
			ProjectID:     project.Yield.ProjectID,
			GrossYield:    project.Yield.GrossYield,
			NetYield:      project.Yield.NetYield,
			OccupancyRate: project.Yield.OccupancyRate,
		}
	}
	for _, unit := range project.Units {
		projectM.Units = append(projectM.Units, fromUnitDomain(unit))
	}
	for _, building := range project.Buildings {
		projectM.Buildings = append(projectM.Buildings, &model.BuildingModel{
			ID:         building.ID,
			ProjectID:  building.ProjectID,
			Name:       building.Name,
			FloorCount: building.FloorCount,
		})
	}
	for _, amenity := range project.Amenities {
		projectM.Amenities = append(projectM.Amenities, fromAmenityDomain(amenity))
	}
	for _, media := range project.Media {
		projectM.Media = append(projectM.Media, &model.MediaModel{
			ID:        media.ID,
			ProjectID: media.ProjectID,
			Kind:      string(media.Kind),
			URL:       media.URL,
			Position:  media.Position,
		})
	}
	for _, doc := range project.Documents {
		projectM.Documents = append(projectM.Documents, &model.DocumentModel{
			ID:        doc.ID,
			ProjectID: doc.ProjectID,
			Title:     doc.Title,
			URL:       doc.URL,
			Kind:      doc.Kind,
		})
	}
	for _, tr := range project.Translations {
		projectM.Translations = append(projectM.Translations, &model.ProjectTranslationModel{
			ID:          tr.ID,
			ProjectID:   tr.ProjectID,
			Language:    tr.Language,
			Name:        tr.Name,
			Description: tr.Description,
		})
	}

	return projectM
}

func toProjectDomain(projectM *model.ProjectModel) *entity.Project {
	project := &entity.Project{
		ID:                 projectM.ID,
		Slug:               projectM.Slug,
		Type:               entity.ProjectType(projectM.Type),
		Status:             entity.ProjectStatus(projectM.Status),
		Class:              projectM.Class,
		ConstructionStatus: entity.ConstructionStatus(projectM.ConstructionStatus),
		LandArea:           projectM.LandArea,
		BuildingCount:      projectM.BuildingCount,
		UnitCount:          projectM.UnitCount,
		TransportScore:     projectM.TransportScore,
		AmenitiesScore:     projectM.AmenitiesScore,
		SafetyScore:        projectM.SafetyScore,
		DeveloperID:        projectM.DeveloperID,
		CreatedAt:          projectM.CreatedAt,
		UpdatedAt:          projectM.UpdatedAt,
	}

	if projectM.Developer != nil {
		project.Developer = toDeveloperDomain(projectM.Developer)
	}
	if projectM.Location != nil {
		project.Location = toLocationDomain(projectM.Location)
	}
	if projectM.Pricing != nil {
		project.Pricing = &entity.Pricing{
			ID:          projectM.Pricing.ID,
			ProjectID:   projectM.Pricing.ProjectID,
			BasePrice:   projectM.Pricing.BasePrice,
			PricePerSqm: projectM.Pricing.PricePerSqm,
			Currency:    projectM.Pricing.Currency,
		}
	}
	if projectM.Yield != nil {
		project.Yield = &entity.Yield{
			ID:            projectM.Yield.ID,
			ProjectID:     projectM.Yield.ProjectID,
			GrossYield:    projectM.Yield.GrossYield,
			NetYield:      projectM.Yield.NetYield,
			OccupancyRate: projectM.Yield.OccupancyRate,
		}
	}
	for _, unitM := range projectM.Units {
		project.Units = append(project.Units, toUnitDomain(unitM))
	}
	for _, buildingM := range projectM.Buildings {
		project.Buildings = append(project.Buildings, &entity.Building{
			ID:         buildingM.ID,
			ProjectID:  buildingM.ProjectID,
			Name:       buildingM.Name,
			FloorCount: buildingM.FloorCount,
		})
	}
	for _, amenityM := range projectM.Amenities {
		project.Amenities = append(project.Amenities, toAmenityDomain(amenityM))
	}
	for _, mediaM := range projectM.Media {
		project.Media = append(project.Media, &entity.Media{
			ID:        mediaM.ID,
			ProjectID: mediaM.ProjectID,
			Kind:      entity.MediaKind(mediaM.Kind),
			URL:       mediaM.URL,
			Position:  mediaM.Position,
		})
	}
	for _, docM := range projectM.Documents {
		project.Documents = append(project.Documents, &entity.Document{
			ID:        docM.ID,
			ProjectID: docM.ProjectID,
			Title:     docM.Title,
			URL:       docM.URL,
			Kind:      docM.Kind,
		})
	}
	for _, trM := range projectM.Translations {
		project.Translations = append(project.Translations, &entity.ProjectTranslation{
			ID:          trM.ID,
			ProjectID:   trM.ProjectID,
			Language:    trM.Language,
			Name:        trM.Name,
			Description: trM.Description,
		})
	}

	return project
}

func fromLocationDomain(location *entity.Location) *model.LocationModel {
	return &model.LocationModel{
		ID:             location.ID,
		ProjectID:      location.ProjectID,
		Address:        location.Address,
		City:           location.City,
		District:       location.District,
		Country:        location.Country,
		Latitude:       location.Latitude,
		Longitude:      location.Longitude,
		BeachDistance:  location.BeachDistance,
		CenterDistance: location.CenterDistance,
	}
}

func toLocationDomain(locationM *model.LocationModel) *entity.Location {
	return &entity.Location{
		ID:             locationM.ID,
		ProjectID:      locationM.ProjectID,
		Address:        locationM.Address,
		City:           locationM.City,
		District:       locationM.District,
		Country:        locationM.Country,
		Latitude:       locationM.Latitude,
		Longitude:      locationM.Longitude,
		BeachDistance:  locationM.BeachDistance,
		CenterDistance: locationM.CenterDistance,
	}
}

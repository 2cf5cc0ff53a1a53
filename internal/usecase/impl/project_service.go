package impl

import (
	"context"
	"fmt"

	"homio/config"
	"homio/internal/domain/entity"
	domainerrors "homio/internal/domain/errors"
	"homio/internal/domain/repository"
	"homio/internal/domain/search"
	"homio/internal/domain/service"
	"homio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type projectService struct {
	projectRepo   repository.ProjectRepository
	developerRepo repository.DeveloperRepository
	amenityRepo   repository.AmenityRepository
	txManager     repository.TransactionManager
	distanceCalc  service.DistanceCalculator
	qrcodeService service.QRCodeService
	config        *config.Config
}

// ProjectServiceParams holds dependencies for ProjectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	ProjectRepo   repository.ProjectRepository
	DeveloperRepo repository.DeveloperRepository
	AmenityRepo   repository.AmenityRepository
	TxManager     repository.TransactionManager
	DistanceCalc  service.DistanceCalculator
	QRCodeService service.QRCodeService
	Config        *config.Config
}

// NewProjectService creates a new project service instance
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		projectRepo:   params.ProjectRepo,
		developerRepo: params.DeveloperRepo,
		amenityRepo:   params.AmenityRepo,
		txManager:     params.TxManager,
		distanceCalc:  params.DistanceCalc,
		qrcodeService: params.QRCodeService,
		config:        params.Config,
	}
}

// CreateProject persists a new project aggregate.
func (s *projectService) CreateProject(ctx context.Context, input usecase.ProjectInput) (*entity.Project, error) {
	project, err := s.buildProject(ctx, input)
	if err != nil {
		return nil, err
	}

	// The amenity resolution and the aggregate insert must land together.
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		amenities, err := resolveAmenities(ctx, factory.NewAmenityRepository(), input.Amenities)
		if err != nil {
			return err
		}
		project.Amenities = amenities

		return factory.NewProjectRepository().Create(ctx, project)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domainerrors.ErrSlugTaken
		}

		return nil, errors.Wrap(err, "failed to create project")
	}

	return s.GetProject(ctx, project.ID)
}

// GetProject retrieves a fully hydrated project by ID.
func (s *projectService) GetProject(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	return project, nil
}

// GetProjectBySlug retrieves a fully hydrated project by its URL slug.
func (s *projectService) GetProjectBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	project, err := s.projectRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by slug")
	}

	return project, nil
}

// ListProjects retrieves a page of projects, newest first.
func (s *projectService) ListProjects(ctx context.Context, page, limit string) (*usecase.ProjectListResult, error) {
	window := search.ResolvePage(page, limit)

	projects, total, err := s.projectRepo.List(ctx, window.Offset, window.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return &usecase.ProjectListResult{
		Projects:    projects,
		TotalCount:  total,
		CurrentPage: window.Number,
		TotalPages:  window.TotalPages(total),
	}, nil
}

// UpdateProject replaces the project's own fields, translations and amenity
// set. The slug of a published project is immutable.
func (s *projectService) UpdateProject(ctx context.Context, id uuid.UUID, input usecase.ProjectInput) (*entity.Project, error) {
	existing, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.IsPublished() && input.Slug != existing.Slug {
		return nil, domainerrors.ErrSlugImmutable
	}

	project, err := s.buildProject(ctx, input)
	if err != nil {
		return nil, err
	}
	project.ID = id

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		amenities, err := resolveAmenities(ctx, factory.NewAmenityRepository(), input.Amenities)
		if err != nil {
			return err
		}
		project.Amenities = amenities

		return factory.NewProjectRepository().Update(ctx, project)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domainerrors.ErrSlugTaken
		}
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to update project")
	}

	return s.GetProject(ctx, id)
}

// DeleteProject removes a project and everything it owns.
func (s *projectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return domainerrors.ErrProjectNotFound
		}

		return errors.Wrap(err, "failed to delete project")
	}

	return nil
}

// GenerateShareQR renders a PNG QR code pointing at the project's public
// listing page.
func (s *projectService) GenerateShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateProjectQR(project.ID, project.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

// ListAmenities retrieves the amenity catalog.
func (s *projectService) ListAmenities(ctx context.Context) ([]*entity.Amenity, error) {
	amenities, err := s.amenityRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list amenities")
	}

	return amenities, nil
}

// buildProject validates the input against the business rules and assembles
// the aggregate, deriving the location distances from the coordinates.
func (s *projectService) buildProject(ctx context.Context, input usecase.ProjectInput) (*entity.Project, error) {
	status := entity.ProjectStatus(input.Status)
	if status == "" {
		status = entity.ProjectStatusDraft
	}

	if status == entity.ProjectStatusPublished {
		if err := s.checkTranslations(input.Translations); err != nil {
			return nil, err
		}
	}

	if _, err := s.developerRepo.FindByID(ctx, input.DeveloperID); err != nil {
		if errors.Is(err, repository.ErrDeveloperNotFound) {
			return nil, domainerrors.ErrDeveloperNotFound
		}

		return nil, errors.Wrap(err, "failed to find developer")
	}

	project := &entity.Project{
		Slug:               input.Slug,
		Type:               entity.ProjectType(input.Type),
		Status:             status,
		Class:              input.Class,
		ConstructionStatus: entity.ConstructionStatus(input.ConstructionStatus),
		LandArea:           input.LandArea,
		TransportScore:     input.TransportScore,
		AmenitiesScore:     input.AmenitiesScore,
		SafetyScore:        input.SafetyScore,
		DeveloperID:        input.DeveloperID,
	}

	if input.Location != nil {
		project.Location = &entity.Location{
			Address:        input.Location.Address,
			City:           input.Location.City,
			District:       input.Location.District,
			Country:        input.Location.Country,
			Latitude:       input.Location.Latitude,
			Longitude:      input.Location.Longitude,
			BeachDistance:  s.distanceCalc.BeachDistance(input.Location.Latitude, input.Location.Longitude),
			CenterDistance: s.distanceCalc.CenterDistance(input.Location.Latitude, input.Location.Longitude),
		}
	}
	if input.Pricing != nil {
		project.Pricing = &entity.Pricing{
			BasePrice:   input.Pricing.BasePrice,
			PricePerSqm: input.Pricing.PricePerSqm,
			Currency:    input.Pricing.Currency,
		}
	}
	for _, tr := range input.Translations {
		project.Translations = append(project.Translations, &entity.ProjectTranslation{
			Language:    tr.Language,
			Name:        tr.Name,
			Description: tr.Description,
		})
	}

	return project, nil
}

// checkTranslations enforces exactly one translation per supported language.
func (s *projectService) checkTranslations(translations []usecase.TranslationInput) error {
	seen := make(map[string]int, len(translations))
	for _, tr := range translations {
		seen[tr.Language]++
	}

	for _, lang := range s.config.Listing.SupportedLanguages() {
		switch seen[lang] {
		case 1:
			delete(seen, lang)
		case 0:
			return domainerrors.ErrTranslationSetIncomplete.
				WithDetails(fmt.Sprintf("missing translation for language %q", lang))
		default:
			return domainerrors.ErrTranslationSetIncomplete.
				WithDetails(fmt.Sprintf("duplicate translation for language %q", lang))
		}
	}
	for lang := range seen {
		return domainerrors.ErrTranslationSetIncomplete.
			WithDetails(fmt.Sprintf("unsupported translation language %q", lang))
	}

	return nil
}

// resolveAmenities maps amenity names onto catalog rows, creating missing
// ones on the fly.
func resolveAmenities(ctx context.Context, amenityRepo repository.AmenityRepository, names []string) ([]*entity.Amenity, error) {
	amenities := make([]*entity.Amenity, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}

		amenity, err := amenityRepo.FindOrCreateByName(ctx, name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve amenity %q", name)
		}
		amenities = append(amenities, amenity)
	}

	return amenities, nil
}

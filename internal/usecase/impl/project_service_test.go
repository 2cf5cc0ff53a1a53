package impl

import (
	"context"
	"testing"

	"homio/config"
	"homio/internal/domain/entity"
	domainerrors "homio/internal/domain/errors"
	"homio/internal/domain/repository"
	mockRepo "homio/internal/mocks/repository"
	mockSvc "homio/internal/mocks/service"
	"homio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type projectServiceMocks struct {
	projectRepo   *mockRepo.MockProjectRepository
	developerRepo *mockRepo.MockDeveloperRepository
	amenityRepo   *mockRepo.MockAmenityRepository
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	distanceCalc  *mockSvc.MockDistanceCalculator
	qrcodeService *mockSvc.MockQRCodeService
}

func newProjectService(t *testing.T) (usecase.ProjectUsecase, projectServiceMocks) {
	t.Helper()

	mocks := projectServiceMocks{
		projectRepo:   mockRepo.NewMockProjectRepository(t),
		developerRepo: mockRepo.NewMockDeveloperRepository(t),
		amenityRepo:   mockRepo.NewMockAmenityRepository(t),
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		distanceCalc:  mockSvc.NewMockDistanceCalculator(t),
		qrcodeService: mockSvc.NewMockQRCodeService(t),
	}

	service := NewProjectService(ProjectServiceParams{
		ProjectRepo:   mocks.projectRepo,
		DeveloperRepo: mocks.developerRepo,
		AmenityRepo:   mocks.amenityRepo,
		TxManager:     mocks.txManager,
		DistanceCalc:  mocks.distanceCalc,
		QRCodeService: mocks.qrcodeService,
		Config: &config.Config{
			Listing: &config.ListingConfig{Languages: []string{"en", "ru"}},
		},
	})

	return service, mocks
}

// passThroughTx makes the transaction manager run the callback against the
// factory mock, like the real manager does with a live transaction.
func passThroughTx(ctx context.Context, mocks projectServiceMocks) {
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mocks.factory)
		})
}

func validProjectInput(developerID uuid.UUID) usecase.ProjectInput {
	return usecase.ProjectInput{
		Slug:               "marina-heights",
		Type:               "residential",
		Status:             "published",
		ConstructionStatus: "completed",
		DeveloperID:        developerID,
		Location: &usecase.LocationInput{
			Address:   "Marina Walk 12",
			City:      "Dubai",
			Country:   "AE",
			Latitude:  25.08,
			Longitude: 55.14,
		},
		Translations: []usecase.TranslationInput{
			{Language: "en", Name: "Marina Heights"},
			{Language: "ru", Name: "Марина Хайтс"},
		},
		Amenities: []string{"Gym"},
	}
}

func TestProjectService_CreateProject(t *testing.T) {
	service, mocks := newProjectService(t)
	ctx := context.Background()
	developerID := uuid.New()
	createdID := uuid.New()

	mocks.developerRepo.EXPECT().
		FindByID(ctx, developerID).
		Return(&entity.Developer{ID: developerID}, nil)
	mocks.distanceCalc.EXPECT().BeachDistance(25.08, 55.14).Return(850.0)
	mocks.distanceCalc.EXPECT().CenterDistance(25.08, 55.14).Return(12400.0)

	passThroughTx(ctx, mocks)
	txAmenities := mockRepo.NewMockAmenityRepository(t)
	txProjects := mockRepo.NewMockProjectRepository(t)
	mocks.factory.EXPECT().NewAmenityRepository().Return(txAmenities)
	mocks.factory.EXPECT().NewProjectRepository().Return(txProjects)

	txAmenities.EXPECT().
		FindOrCreateByName(ctx, "Gym").
		Return(&entity.Amenity{ID: uuid.New(), Name: "Gym"}, nil)
	txProjects.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Project")).
		RunAndReturn(func(_ context.Context, project *entity.Project) error {
			// Derived distances must land on the aggregate before insert.
			require.NotNil(t, project.Location)
			assert.Equal(t, 850.0, project.Location.BeachDistance)
			assert.Equal(t, 12400.0, project.Location.CenterDistance)
			assert.Len(t, project.Amenities, 1)
			project.ID = createdID

			return nil
		})

	mocks.projectRepo.EXPECT().
		FindByID(ctx, createdID).
		Return(&entity.Project{ID: createdID, Slug: "marina-heights"}, nil)

	project, err := service.CreateProject(ctx, validProjectInput(developerID))
	require.NoError(t, err)
	assert.Equal(t, createdID, project.ID)
}

func TestProjectService_CreateProject_IncompleteTranslations(t *testing.T) {
	service, _ := newProjectService(t)

	input := validProjectInput(uuid.New())
	input.Translations = input.Translations[:1] // missing "ru"

	project, err := service.CreateProject(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, project)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTranslationSetIncomplete.ErrorCode(), appErr.ErrorCode())
}

func TestProjectService_CreateProject_DraftSkipsTranslationCheck(t *testing.T) {
	service, mocks := newProjectService(t)
	ctx := context.Background()
	developerID := uuid.New()
	createdID := uuid.New()

	input := validProjectInput(developerID)
	input.Status = "draft"
	input.Translations = nil
	input.Amenities = nil
	input.Location = nil

	mocks.developerRepo.EXPECT().
		FindByID(ctx, developerID).
		Return(&entity.Developer{ID: developerID}, nil)

	passThroughTx(ctx, mocks)
	txProjects := mockRepo.NewMockProjectRepository(t)
	txAmenities := mockRepo.NewMockAmenityRepository(t)
	mocks.factory.EXPECT().NewAmenityRepository().Return(txAmenities)
	mocks.factory.EXPECT().NewProjectRepository().Return(txProjects)
	txProjects.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Project")).
		RunAndReturn(func(_ context.Context, project *entity.Project) error {
			project.ID = createdID

			return nil
		})
	mocks.projectRepo.EXPECT().
		FindByID(ctx, createdID).
		Return(&entity.Project{ID: createdID}, nil)

	_, err := service.CreateProject(ctx, input)
	require.NoError(t, err)
}

func TestProjectService_CreateProject_DuplicateSlug(t *testing.T) {
	service, mocks := newProjectService(t)
	ctx := context.Background()
	developerID := uuid.New()

	mocks.developerRepo.EXPECT().
		FindByID(ctx, developerID).
		Return(&entity.Developer{ID: developerID}, nil)
	mocks.distanceCalc.EXPECT().BeachDistance(mock.Anything, mock.Anything).Return(0.0)
	mocks.distanceCalc.EXPECT().CenterDistance(mock.Anything, mock.Anything).Return(0.0)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateSlug)

	project, err := service.CreateProject(ctx, validProjectInput(developerID))
	require.Error(t, err)
	assert.Nil(t, project)
	assert.ErrorIs(t, err, domainerrors.ErrSlugTaken)
}

func TestProjectService_UpdateProject_SlugImmutableOncePublished(t *testing.T) {
	service, mocks := newProjectService(t)
	ctx := context.Background()
	projectID := uuid.New()

	mocks.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(&entity.Project{
			ID:     projectID,
			Slug:   "marina-heights",
			Status: entity.ProjectStatusPublished,
		}, nil)

	input := validProjectInput(uuid.New())
	input.Slug = "marina-heights-renamed"

	project, err := service.UpdateProject(ctx, projectID, input)
	require.Error(t, err)
	assert.Nil(t, project)
	assert.ErrorIs(t, err, domainerrors.ErrSlugImmutable)
}

func TestProjectService_GetProject_NotFound(t *testing.T) {
	service, mocks := newProjectService(t)
	ctx := context.Background()
	projectID := uuid.New()

	mocks.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(nil, repository.ErrProjectNotFound)

	project, err := service.GetProject(ctx, projectID)
	require.Error(t, err)
	assert.Nil(t, project)
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestProjectService_GenerateShareQR(t *testing.T) {
	service, mocks := newProjectService(t)
	ctx := context.Background()
	projectID := uuid.New()

	mocks.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(&entity.Project{ID: projectID, Slug: "marina-heights"}, nil)
	mocks.qrcodeService.EXPECT().
		GenerateProjectQR(projectID, "marina-heights").
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := service.GenerateShareQR(ctx, projectID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestProjectService_ListProjects(t *testing.T) {
	service, mocks := newProjectService(t)
	ctx := context.Background()

	mocks.projectRepo.EXPECT().
		List(ctx, 20, 20).
		Return([]*entity.Project{{Slug: "city-walk"}}, int64(21), nil)

	result, err := service.ListProjects(ctx, "2", "")
	require.NoError(t, err)
	assert.Equal(t, int64(21), result.TotalCount)
	assert.Equal(t, 2, result.CurrentPage)
	assert.Equal(t, 2, result.TotalPages)
	assert.Len(t, result.Projects, 1)
}

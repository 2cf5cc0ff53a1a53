package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"homio/internal/domain/entity"
	"homio/internal/domain/repository"
	"homio/internal/domain/search"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"homio/internal/infra/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache database keeps every pooled connection on the
	// same in-memory store while isolating tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.DeveloperModel{},
		&model.DeveloperTranslationModel{},
		&model.ProjectModel{},
		&model.ProjectTranslationModel{},
		&model.LocationModel{},
		&model.PricingModel{},
		&model.YieldModel{},
		&model.BuildingModel{},
		&model.LayoutModel{},
		&model.AmenityModel{},
		&model.UnitModel{},
		&model.UnitFeatureModel{},
		&model.MediaModel{},
		&model.DocumentModel{},
	))

	return db
}

type searchFixture struct {
	marina   *entity.Project
	cityWalk *entity.Project
}

// seedSearchFixture creates two projects:
//
//	Marina Heights: completed, amenities Gym and Pool, Marina district.
//	  - a studio at 250000 with a sea_view feature entry
//	  - a one-bedroom at price 0 (not listed)
//	  - a four-bedroom at 800000 with "Partial Sea View" in the view field
//	City Walk: under construction, Downtown district.
//	  - a two-bedroom at 400000 on a pet-friendly layout
func seedSearchFixture(t *testing.T, db *gorm.DB) searchFixture {
	t.Helper()
	ctx := context.Background()

	developer := &entity.Developer{
		Slug: "emaar",
		Translations: []*entity.DeveloperTranslation{
			{Language: "en", Name: "Emaar"},
		},
	}
	require.NoError(t, NewDeveloperRepository(db).Create(ctx, developer))

	area := func(v float64) *float64 { return &v }
	projects := NewProjectRepository(db)

	marina := &entity.Project{
		Slug:               "marina-heights",
		Type:               entity.ProjectTypeResidential,
		Status:             entity.ProjectStatusPublished,
		ConstructionStatus: entity.ConstructionStatusCompleted,
		DeveloperID:        developer.ID,
		CreatedAt:          time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Location: &entity.Location{
			Address:  "Marina Walk 12",
			City:     "Dubai",
			District: "Marina",
			Country:  "AE",
		},
		Amenities: []*entity.Amenity{
			{Name: "Gym"},
			{Name: "Pool"},
		},
		Translations: []*entity.ProjectTranslation{
			{Language: "en", Name: "Marina Heights"},
		},
	}
	require.NoError(t, projects.Create(ctx, marina))

	studioLayout := &model.LayoutModel{
		ProjectID: marina.ID,
		Name:      "Studio S1",
		Type:      "studio",
	}
	require.NoError(t, db.Create(studioLayout).Error)

	cityWalk := &entity.Project{
		Slug:               "city-walk",
		Type:               entity.ProjectTypeResidential,
		Status:             entity.ProjectStatusPublished,
		ConstructionStatus: entity.ConstructionStatusUnderConstruction,
		DeveloperID:        developer.ID,
		CreatedAt:          time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Location: &entity.Location{
			Address:  "Al Safa 7",
			City:     "Dubai",
			District: "Downtown",
			Country:  "AE",
		},
		Translations: []*entity.ProjectTranslation{
			{Language: "en", Name: "City Walk"},
		},
	}
	require.NoError(t, projects.Create(ctx, cityWalk))

	petLayout := &model.LayoutModel{
		ProjectID: cityWalk.ID,
		Name:      "Family F2",
		Type:      "2br",
		HasPets:   true,
	}
	require.NoError(t, db.Create(petLayout).Error)

	units := NewUnitRepository(db)
	studioLayoutID := studioLayout.ID
	petLayoutID := petLayout.ID
	fixtureUnits := []*entity.Unit{
		{
			ProjectID: marina.ID,
			LayoutID:  &studioLayoutID,
			Name:      "A-101",
			Number:    "101",
			Status:    entity.UnitStatusAvailable,
			Floor:     1,
			Price:     250000,
			Bedrooms:  0,
			Bathrooms: 1,
			Area:      area(38),
			Features:  []string{"sea_view"},
		},
		{
			ProjectID: marina.ID,
			Name:      "A-202",
			Number:    "202",
			Status:    entity.UnitStatusAvailable,
			Floor:     2,
			Price:     0,
			Bedrooms:  1,
			Bathrooms: 1,
			Area:      area(55),
		},
		{
			ProjectID: marina.ID,
			Name:      "A-1204",
			Number:    "1204",
			Status:    entity.UnitStatusAvailable,
			Floor:     12,
			Price:     800000,
			Bedrooms:  4,
			Bathrooms: 3,
			Area:      area(180),
			View:      "Partial Sea View",
		},
		{
			ProjectID: cityWalk.ID,
			LayoutID:  &petLayoutID,
			Name:      "B-503",
			Number:    "503",
			Status:    entity.UnitStatusReserved,
			Floor:     5,
			Price:     400000,
			Bedrooms:  2,
			Bathrooms: 2,
			Area:      area(95),
		},
	}
	for _, unit := range fixtureUnits {
		require.NoError(t, units.Create(ctx, unit))
	}

	return searchFixture{marina: marina, cityWalk: cityWalk}
}

func buildQuery(t *testing.T, typ search.Type, fs search.FilterSet) repository.SearchQuery {
	t.Helper()

	conds, err := search.Build(typ, fs)
	require.NoError(t, err)

	return repository.SearchQuery{
		Conds: conds,
		Sort:  search.ResolveSort(typ, "", ""),
		Page:  search.ResolvePage("", ""),
	}
}

func TestSearchUnits_StudioUnderPriceCap(t *testing.T) {
	db := newTestDB(t)
	seedSearchFixture(t, db)
	repo := NewSearchRepository(db)

	units, total, err := repo.SearchUnits(context.Background(), buildQuery(t, search.TypeUnits, search.FilterSet{
		Bedrooms: "st",
		PriceMax: "300000",
	}))
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, units, 1)
	assert.Equal(t, "A-101", units[0].Name)
	require.NotNil(t, units[0].Layout)
	assert.Equal(t, "studio", units[0].Layout.Type)
}

func TestSearchUnits_ExcludesUnlisted(t *testing.T) {
	db := newTestDB(t)
	seedSearchFixture(t, db)
	repo := NewSearchRepository(db)

	units, total, err := repo.SearchUnits(context.Background(), buildQuery(t, search.TypeUnits, search.FilterSet{}))
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	for _, unit := range units {
		assert.Greater(t, unit.Price, 0.0)
	}
}

func TestSearchUnits_SeaViewMatchesBothShapes(t *testing.T) {
	db := newTestDB(t)
	seedSearchFixture(t, db)
	repo := NewSearchRepository(db)

	units, total, err := repo.SearchUnits(context.Background(), buildQuery(t, search.TypeUnits, search.FilterSet{
		Features: []string{"sea_view"},
	}))
	require.NoError(t, err)

	// One unit carries the feature entry, the other the view-field substring.
	assert.Equal(t, int64(2), total)
	require.Len(t, units, 2)
	names := []string{units[0].Name, units[1].Name}
	assert.ElementsMatch(t, []string{"A-101", "A-1204"}, names)
}

func TestSearchUnits_PetFriendlyViaLayoutFlag(t *testing.T) {
	db := newTestDB(t)
	seedSearchFixture(t, db)
	repo := NewSearchRepository(db)

	units, total, err := repo.SearchUnits(context.Background(), buildQuery(t, search.TypeUnits, search.FilterSet{
		Features: []string{"pet_friendly"},
	}))
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, units, 1)
	assert.Equal(t, "B-503", units[0].Name)
}

func TestSearchUnits_PriceSortAscending(t *testing.T) {
	db := newTestDB(t)
	seedSearchFixture(t, db)
	repo := NewSearchRepository(db)

	conds, err := search.Build(search.TypeUnits, search.FilterSet{})
	require.NoError(t, err)

	units, _, err := repo.SearchUnits(context.Background(), repository.SearchQuery{
		Conds: conds,
		Sort:  search.ResolveSort(search.TypeUnits, "price", "asc"),
		Page:  search.ResolvePage("", ""),
	})
	require.NoError(t, err)

	require.Len(t, units, 3)
	assert.Equal(t, 250000.0, units[0].Price)
	assert.Equal(t, 400000.0, units[1].Price)
	assert.Equal(t, 800000.0, units[2].Price)
}

func TestSearchProjects_UnitConditionsNest(t *testing.T) {
	db := newTestDB(t)
	fx := seedSearchFixture(t, db)
	repo := NewSearchRepository(db)

	projects, total, err := repo.SearchProjects(context.Background(), buildQuery(t, search.TypeProjects, search.FilterSet{
		Bedrooms: "4",
	}))
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, projects, 1)
	assert.Equal(t, fx.marina.ID, projects[0].ID)
}

func TestSearchProjects_AmenityFilter(t *testing.T) {
	db := newTestDB(t)
	fx := seedSearchFixture(t, db)
	repo := NewSearchRepository(db)

	projects, total, err := repo.SearchProjects(context.Background(), buildQuery(t, search.TypeProjects, search.FilterSet{
		Amenities: []string{"Gym"},
	}))
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, projects, 1)
	assert.Equal(t, fx.marina.ID, projects[0].ID)
}

func TestSearchProjects_CompletionBucket(t *testing.T) {
	db := newTestDB(t)
	fx := seedSearchFixture(t, db)
	repo := NewSearchRepository(db)

	projects, total, err := repo.SearchProjects(context.Background(), buildQuery(t, search.TypeProjects, search.FilterSet{
		Completion: "ready",
	}))
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, projects, 1)
	assert.Equal(t, fx.marina.ID, projects[0].ID)
	assert.Equal(t, entity.ConstructionStatusCompleted, projects[0].ConstructionStatus)
}

func TestSearchProjects_FreeTextOverNameAndLocation(t *testing.T) {
	db := newTestDB(t)
	fx := seedSearchFixture(t, db)
	repo := NewSearchRepository(db)

	t.Run("matches a name translation", func(t *testing.T) {
		projects, total, err := repo.SearchProjects(context.Background(), buildQuery(t, search.TypeProjects, search.FilterSet{
			Query: "marina",
		}))
		require.NoError(t, err)

		assert.Equal(t, int64(1), total)
		require.Len(t, projects, 1)
		assert.Equal(t, fx.marina.ID, projects[0].ID)
	})

	t.Run("matches a location district", func(t *testing.T) {
		projects, total, err := repo.SearchProjects(context.Background(), buildQuery(t, search.TypeProjects, search.FilterSet{
			Query: "downtown",
		}))
		require.NoError(t, err)

		assert.Equal(t, int64(1), total)
		require.Len(t, projects, 1)
		assert.Equal(t, fx.cityWalk.ID, projects[0].ID)
	})

	t.Run("a direct id filter suppresses the text query", func(t *testing.T) {
		projects, total, err := repo.SearchProjects(context.Background(), buildQuery(t, search.TypeProjects, search.FilterSet{
			Query:     "marina",
			ProjectID: fx.cityWalk.ID.String(),
		}))
		require.NoError(t, err)

		assert.Equal(t, int64(1), total)
		require.Len(t, projects, 1)
		assert.Equal(t, fx.cityWalk.ID, projects[0].ID)
	})
}

func TestSearchProjects_DefaultSortIsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	fx := seedSearchFixture(t, db)
	repo := NewSearchRepository(db)

	projects, total, err := repo.SearchProjects(context.Background(), buildQuery(t, search.TypeProjects, search.FilterSet{}))
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	require.Len(t, projects, 2)
	assert.Equal(t, fx.cityWalk.ID, projects[0].ID)
	assert.Equal(t, fx.marina.ID, projects[1].ID)
}

func TestSearchProjects_Hydration(t *testing.T) {
	db := newTestDB(t)
	seedSearchFixture(t, db)
	repo := NewSearchRepository(db)

	projects, _, err := repo.SearchProjects(context.Background(), buildQuery(t, search.TypeProjects, search.FilterSet{
		Query: "marina",
	}))
	require.NoError(t, err)
	require.Len(t, projects, 1)

	project := projects[0]
	require.NotNil(t, project.Location)
	assert.Equal(t, "Marina", project.Location.District)
	require.NotNil(t, project.Translation("en"))
	assert.Equal(t, "Marina Heights", project.Translation("en").Name)
	assert.Len(t, project.Amenities, 2)
	require.NotNil(t, project.Developer)
	assert.Equal(t, "emaar", project.Developer.Slug)
}

func TestSearchUnits_Pagination(t *testing.T) {
	db := newTestDB(t)
	seedSearchFixture(t, db)
	repo := NewSearchRepository(db)

	conds, err := search.Build(search.TypeUnits, search.FilterSet{})
	require.NoError(t, err)

	page1 := search.ResolvePage("1", "2")
	units, total, err := repo.SearchUnits(context.Background(), repository.SearchQuery{
		Conds: conds,
		Sort:  search.ResolveSort(search.TypeUnits, "price", "asc"),
		Page:  page1,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	assert.Len(t, units, 2)
	assert.Equal(t, 2, page1.TotalPages(total))

	units, total, err = repo.SearchUnits(context.Background(), repository.SearchQuery{
		Conds: conds,
		Sort:  search.ResolveSort(search.TypeUnits, "price", "asc"),
		Page:  search.ResolvePage("2", "2"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	require.Len(t, units, 1)
	assert.Equal(t, 800000.0, units[0].Price)
}

func TestSearchUnits_MassEditDimensions(t *testing.T) {
	db := newTestDB(t)
	fx := seedSearchFixture(t, db)
	repo := NewSearchRepository(db)

	units, total, err := repo.SearchUnits(context.Background(), buildQuery(t, search.TypeUnits, search.FilterSet{
		ProjectID: fx.cityWalk.ID.String(),
		Status:    string(entity.UnitStatusReserved),
		UnitQuery: "503",
	}))
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, units, 1)
	assert.Equal(t, "B-503", units[0].Name)
}

func TestProjectRepository_SlugUniqueness(t *testing.T) {
	db := newTestDB(t)
	fx := seedSearchFixture(t, db)
	repo := NewProjectRepository(db)

	dup := &entity.Project{
		Slug:               "marina-heights",
		Type:               entity.ProjectTypeResidential,
		Status:             entity.ProjectStatusDraft,
		ConstructionStatus: entity.ConstructionStatusOffPlan,
		DeveloperID:        fx.marina.DeveloperID,
	}
	err := repo.Create(context.Background(), dup)
	assert.ErrorIs(t, err, repository.ErrDuplicateSlug)
}

func TestUnitRepository_ApplyPatch(t *testing.T) {
	db := newTestDB(t)
	fx := seedSearchFixture(t, db)
	units := NewUnitRepository(db)
	ctx := context.Background()

	all, err := units.FindByProject(ctx, fx.marina.ID)
	require.NoError(t, err)
	require.Len(t, all, 3)

	target := all[0]
	newPrice := 275000.0
	newStatus := entity.UnitStatusReserved
	newFeatures := []string{"sea_view", "balcony"}
	require.NoError(t, units.ApplyPatch(ctx, target.ID, repository.UnitPatch{
		Price:    &newPrice,
		Status:   &newStatus,
		Features: &newFeatures,
	}))

	patched, err := units.FindByID(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 275000.0, patched.Price)
	assert.Equal(t, entity.UnitStatusReserved, patched.Status)
	assert.ElementsMatch(t, []string{"sea_view", "balcony"}, patched.Features)

	t.Run("missing unit", func(t *testing.T) {
		err := units.ApplyPatch(ctx, uuid.New(), repository.UnitPatch{Price: &newPrice})
		assert.ErrorIs(t, err, repository.ErrUnitNotFound)
	})
}

func TestAmenityRepository_FindOrCreate(t *testing.T) {
	db := newTestDB(t)
	repo := NewAmenityRepository(db)
	ctx := context.Background()

	first, err := repo.FindOrCreateByName(ctx, "Sauna")
	require.NoError(t, err)

	second, err := repo.FindOrCreateByName(ctx, "Sauna")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Sauna", all[0].Name)
}

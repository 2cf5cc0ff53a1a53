package search

import (
	"testing"

	"homio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnit(bedrooms int, price float64, mutate ...func(*entity.Unit)) *entity.Unit {
	u := &entity.Unit{
		ID:        uuid.New(),
		ProjectID: uuid.New(),
		Status:    entity.UnitStatusAvailable,
		Bedrooms:  bedrooms,
		Bathrooms: 1,
		Price:     price,
	}
	for _, fn := range mutate {
		fn(u)
	}

	return u
}

func buildUnitConds(t *testing.T, fs FilterSet) []Condition {
	t.Helper()

	conds, err := Build(TypeUnits, fs)
	require.NoError(t, err)

	return conds.Unit
}

func TestFilter_StudioUnderPriceCap(t *testing.T) {
	// Two studios priced 250000 and 320000, three non-studios under 300000:
	// the studio filter with a 300000 cap must return exactly the cheap studio.
	cheapStudio := newUnit(0, 250000)
	units := []*entity.Unit{
		cheapStudio,
		newUnit(0, 320000),
		newUnit(1, 180000),
		newUnit(2, 240000),
		newUnit(3, 295000),
	}

	conds := buildUnitConds(t, FilterSet{Bedrooms: "st", PriceMax: "300000"})

	matched := Filter(units, conds)
	require.Len(t, matched, 1)
	assert.Equal(t, cheapStudio.ID, matched[0].ID)
}

func TestFilter_FourPlusBedrooms(t *testing.T) {
	four := newUnit(4, 500000)
	six := newUnit(6, 900000)
	units := []*entity.Unit{newUnit(3, 400000), four, six}

	matched := Filter(units, buildUnitConds(t, FilterSet{Bedrooms: "4"}))
	require.Len(t, matched, 2)
	assert.Equal(t, four.ID, matched[0].ID)
	assert.Equal(t, six.ID, matched[1].ID)
}

func TestFilter_UnlistedUnitsNeverAppear(t *testing.T) {
	listed := newUnit(1, 100000)
	units := []*entity.Unit{listed, newUnit(1, 0)}

	// No price range requested at all: price 0 is still excluded.
	matched := Filter(units, buildUnitConds(t, FilterSet{}))
	require.Len(t, matched, 1)
	assert.Equal(t, listed.ID, matched[0].ID)
}

func TestFilter_SeaViewMatchesEitherStrategy(t *testing.T) {
	byFeature := newUnit(1, 200000, func(u *entity.Unit) {
		u.Features = []string{"Sea View"}
	})
	byViewField := newUnit(1, 210000, func(u *entity.Unit) {
		u.View = "Partial sea view from the balcony"
	})
	neither := newUnit(1, 220000, func(u *entity.Unit) {
		u.View = "Garden"
	})

	matched := Filter([]*entity.Unit{byFeature, byViewField, neither}, buildUnitConds(t, FilterSet{Features: []string{"sea_view"}}))
	require.Len(t, matched, 2)
	assert.Equal(t, byFeature.ID, matched[0].ID)
	assert.Equal(t, byViewField.ID, matched[1].ID)
}

func TestFilter_LayoutFlagStrategy(t *testing.T) {
	byFlag := newUnit(1, 200000, func(u *entity.Unit) {
		u.Layout = &entity.Layout{HasPets: true}
	})
	bare := newUnit(1, 210000)

	matched := Filter([]*entity.Unit{byFlag, bare}, buildUnitConds(t, FilterSet{Features: []string{"pet_friendly"}}))
	require.Len(t, matched, 1)
	assert.Equal(t, byFlag.ID, matched[0].ID)
}

func TestFilter_PropertyTypeRequiresLayout(t *testing.T) {
	studioLayout := newUnit(0, 200000, func(u *entity.Unit) {
		u.Layout = &entity.Layout{Type: "studio"}
	})
	noLayout := newUnit(0, 210000)

	matched := Filter([]*entity.Unit{studioLayout, noLayout}, buildUnitConds(t, FilterSet{PropertyType: "studio"}))
	require.Len(t, matched, 1)
	assert.Equal(t, studioLayout.ID, matched[0].ID)
}

func TestFilter_MassEditDimensions(t *testing.T) {
	building := uuid.New()
	wanted := newUnit(1, 150000, func(u *entity.Unit) {
		u.Name = "A-1204"
		u.Number = "1204"
		u.Floor = 12
		u.BuildingID = &building
		u.Status = entity.UnitStatusReserved
	})
	other := newUnit(1, 150000, func(u *entity.Unit) {
		u.Name = "B-0101"
		u.Floor = 1
	})

	conds := buildUnitConds(t, FilterSet{
		Status:     string(entity.UnitStatusReserved),
		BuildingID: building.String(),
		Floor:      "12",
		UnitQuery:  "120",
	})

	matched := Filter([]*entity.Unit{wanted, other}, conds)
	require.Len(t, matched, 1)
	assert.Equal(t, wanted.ID, matched[0].ID)
}

func TestMatches_SubstringIsCaseInsensitive(t *testing.T) {
	u := newUnit(1, 150000, func(u *entity.Unit) {
		u.Name = "Tower A-1204"
	})

	assert.True(t, Matches(u, []Condition{Contains{Field: FieldUnitName, Value: "tower a"}}))
	assert.False(t, Matches(u, []Condition{Contains{Field: FieldUnitName, Value: "tower b"}}))
}

func TestMatches_ProjectScopeConditionNeverMatches(t *testing.T) {
	u := newUnit(1, 150000)

	assert.False(t, Matches(u, []Condition{HasAmenity{Names: []string{"Gym"}}}))
}

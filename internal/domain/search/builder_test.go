package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_BedroomSentinels(t *testing.T) {
	tests := []struct {
		name     string
		bedrooms string
		want     Condition
	}{
		{name: "studio sentinel", bedrooms: "st", want: Eq{Field: FieldUnitBedrooms, Value: 0}},
		{name: "four plus sentinel", bedrooms: "4", want: Range{Field: FieldUnitBedrooms, Min: ptr(4)}},
		{name: "literal count", bedrooms: "2", want: Eq{Field: FieldUnitBedrooms, Value: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conds, err := Build(TypeProjects, FilterSet{Bedrooms: tt.bedrooms})
			require.NoError(t, err)
			require.Len(t, conds.Unit, 1)
			assert.Equal(t, tt.want, conds.Unit[0])
			assert.Empty(t, conds.Project)
		})
	}
}

func TestBuild_MalformedCountRejected(t *testing.T) {
	_, err := Build(TypeProjects, FilterSet{Bedrooms: "two"})

	var invalid *InvalidFilterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "bedrooms", invalid.Param)
	assert.Equal(t, "two", invalid.Value)
}

func TestBuild_PriceRangeBounds(t *testing.T) {
	t.Run("both bounds", func(t *testing.T) {
		conds, err := Build(TypeProjects, FilterSet{PriceMin: "100000", PriceMax: "300000"})
		require.NoError(t, err)
		require.Len(t, conds.Unit, 1)

		r, ok := conds.Unit[0].(Range)
		require.True(t, ok)
		assert.Equal(t, FieldUnitPrice, r.Field)
		require.NotNil(t, r.Min)
		require.NotNil(t, r.Max)
		assert.Equal(t, 100000.0, *r.Min)
		assert.Equal(t, 300000.0, *r.Max)
	})

	t.Run("lower bound only", func(t *testing.T) {
		conds, err := Build(TypeProjects, FilterSet{PriceMin: "100000"})
		require.NoError(t, err)
		require.Len(t, conds.Unit, 1)

		r, ok := conds.Unit[0].(Range)
		require.True(t, ok)
		require.NotNil(t, r.Min)
		assert.Nil(t, r.Max)
	})

	t.Run("both omitted adds no condition", func(t *testing.T) {
		conds, err := Build(TypeProjects, FilterSet{})
		require.NoError(t, err)
		assert.True(t, conds.Empty())
	})
}

func TestBuild_MalformedNumericBoundsRejected(t *testing.T) {
	for _, raw := range []string{"abc", "NaN", "Inf", "-Inf"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Build(TypeProjects, FilterSet{PriceMin: raw})

			var invalid *InvalidFilterError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "priceMin", invalid.Param)
		})
	}
}

func TestBuild_PropertyTypeTargetsLayout(t *testing.T) {
	conds, err := Build(TypeProjects, FilterSet{PropertyType: "studio"})
	require.NoError(t, err)
	require.Len(t, conds.Unit, 1)
	assert.Equal(t, Eq{Field: FieldLayoutType, Value: "studio"}, conds.Unit[0])
}

func TestBuild_UnitsTypeExcludesUnlistedUnits(t *testing.T) {
	conds, err := Build(TypeUnits, FilterSet{})
	require.NoError(t, err)
	require.Len(t, conds.Unit, 1)
	assert.Equal(t, Gt{Field: FieldUnitPrice, Value: 0}, conds.Unit[0])

	conds, err = Build(TypeProjects, FilterSet{})
	require.NoError(t, err)
	assert.Empty(t, conds.Unit)
}

func TestBuild_CompletionBuckets(t *testing.T) {
	conds, err := Build(TypeProjects, FilterSet{Completion: "ready"})
	require.NoError(t, err)
	require.Len(t, conds.Project, 1)
	assert.Equal(t, Eq{Field: FieldProjectConstruction, Value: "completed"}, conds.Project[0])

	// Unrecognized buckets are ignored, not rejected.
	conds, err = Build(TypeProjects, FilterSet{Completion: "almost_done"})
	require.NoError(t, err)
	assert.Empty(t, conds.Project)
}

func TestBuild_DirectIDSuppressesFreeText(t *testing.T) {
	conds, err := Build(TypeProjects, FilterSet{ProjectID: "p-1", Query: "marina"})
	require.NoError(t, err)
	require.Len(t, conds.Project, 1)
	assert.Equal(t, Eq{Field: FieldProjectID, Value: "p-1"}, conds.Project[0])
}

func TestBuild_FreeTextExpandsAcrossNameAndLocation(t *testing.T) {
	conds, err := Build(TypeProjects, FilterSet{Query: "marina"})
	require.NoError(t, err)
	require.Len(t, conds.Project, 1)

	or, ok := conds.Project[0].(Or)
	require.True(t, ok)
	require.Len(t, or.Conds, 4)

	fields := make([]Field, 0, len(or.Conds))
	for _, child := range or.Conds {
		contains, ok := child.(Contains)
		require.True(t, ok)
		assert.Equal(t, "marina", contains.Value)
		fields = append(fields, contains.Field)
	}
	assert.ElementsMatch(t, []Field{FieldProjectName, FieldLocationAddress, FieldLocationDistrict, FieldLocationCity}, fields)
}

func TestBuild_SeaViewFeatureMatchesThreeWays(t *testing.T) {
	conds, err := Build(TypeProjects, FilterSet{Features: []string{"sea_view"}})
	require.NoError(t, err)
	require.Len(t, conds.Unit, 1)

	or, ok := conds.Unit[0].(Or)
	require.True(t, ok)
	require.Len(t, or.Conds, 2)
	assert.Equal(t, HasFeature{Names: []string{"sea_view", "Sea View"}}, or.Conds[0])
	assert.Equal(t, Contains{Field: FieldUnitView, Value: "Sea View"}, or.Conds[1])
}

func TestBuild_HasPrefixedVariantChecksLayoutFlag(t *testing.T) {
	conds, err := Build(TypeProjects, FilterSet{Features: []string{"pet_friendly"}})
	require.NoError(t, err)
	require.Len(t, conds.Unit, 1)

	or, ok := conds.Unit[0].(Or)
	require.True(t, ok)
	assert.Contains(t, or.Conds, LayoutFlag{Name: "hasPets"})
	assert.Contains(t, or.Conds, HasFeature{Names: []string{"pet_friendly", "Pet Friendly", "hasPets"}})
}

func TestBuild_UnknownFeatureStillFilters(t *testing.T) {
	conds, err := Build(TypeProjects, FilterSet{Features: []string{"rooftop_cinema"}})
	require.NoError(t, err)
	require.Len(t, conds.Unit, 1)
	assert.Equal(t, HasFeature{Names: []string{"rooftop_cinema"}}, conds.Unit[0])
}

func TestBuild_AmenitiesRequireEverySelection(t *testing.T) {
	conds, err := Build(TypeProjects, FilterSet{Amenities: []string{"Infinity Pool", "Gym"}})
	require.NoError(t, err)
	require.Len(t, conds.Project, 2)
	assert.Equal(t, HasAmenity{Names: []string{"Infinity Pool"}}, conds.Project[0])
	assert.Equal(t, HasAmenity{Names: []string{"Gym"}}, conds.Project[1])
}

func TestBuild_MassEditDimensions(t *testing.T) {
	conds, err := Build(TypeUnits, FilterSet{
		Status:     "AVAILABLE",
		BuildingID: "b-1",
		LayoutID:   "l-1",
		Floor:      "12",
		UnitQuery:  "A-12",
	})
	require.NoError(t, err)

	assert.Contains(t, conds.Unit, Eq{Field: FieldUnitStatus, Value: "AVAILABLE"})
	assert.Contains(t, conds.Unit, Eq{Field: FieldUnitBuildingID, Value: "b-1"})
	assert.Contains(t, conds.Unit, Eq{Field: FieldUnitLayoutID, Value: "l-1"})
	assert.Contains(t, conds.Unit, Eq{Field: FieldUnitFloor, Value: 12})
	assert.Contains(t, conds.Unit, Or{Conds: []Condition{
		Contains{Field: FieldUnitName, Value: "A-12"},
		Contains{Field: FieldUnitNumber, Value: "A-12"},
	}})
}

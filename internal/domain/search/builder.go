package search

import (
	"math"
	"strconv"
	"strings"
)

// completionBuckets collapses the public completion filter into the stored
// construction-status enum. Unrecognized buckets add no condition.
var completionBuckets = map[string]string{
	"ready":              "completed",
	"under_construction": "under_construction",
	"off_plan":           "off_plan",
}

// Build translates a flat filter set into unit-scope and project-scope
// condition lists. It is a pure transformation: no I/O, no mutation of the
// input. Malformed numeric values return an *InvalidFilterError instead of
// silently dropping the condition.
func Build(typ Type, fs FilterSet) (Conditions, error) {
	var conds Conditions

	// Units with price 0 are not listed for sale and never appear in public
	// unit search results, regardless of any requested price range.
	if typ == TypeUnits {
		conds.Unit = append(conds.Unit, Gt{Field: FieldUnitPrice, Value: 0})
	}

	if fs.Bedrooms != "" {
		cond, err := countCondition("bedrooms", fs.Bedrooms, FieldUnitBedrooms)
		if err != nil {
			return Conditions{}, err
		}
		conds.Unit = append(conds.Unit, cond)
	}

	if fs.Bathrooms != "" {
		cond, err := countCondition("bathrooms", fs.Bathrooms, FieldUnitBathrooms)
		if err != nil {
			return Conditions{}, err
		}
		conds.Unit = append(conds.Unit, cond)
	}

	priceRange, err := rangeCondition(FieldUnitPrice, "priceMin", fs.PriceMin, "priceMax", fs.PriceMax)
	if err != nil {
		return Conditions{}, err
	}
	if priceRange != nil {
		conds.Unit = append(conds.Unit, *priceRange)
	}

	areaRange, err := rangeCondition(FieldUnitArea, "areaMin", fs.AreaMin, "areaMax", fs.AreaMax)
	if err != nil {
		return Conditions{}, err
	}
	if areaRange != nil {
		conds.Unit = append(conds.Unit, *areaRange)
	}

	// The property type lives on the related layout, not the unit itself.
	if fs.PropertyType != "" {
		conds.Unit = append(conds.Unit, Eq{Field: FieldLayoutType, Value: fs.PropertyType})
	}

	for _, token := range fs.Features {
		if token == "" {
			continue
		}
		conds.Unit = append(conds.Unit, featureCondition(token))
	}

	// Mass-edit dimensions.
	if fs.Status != "" {
		conds.Unit = append(conds.Unit, Eq{Field: FieldUnitStatus, Value: fs.Status})
	}
	if fs.BuildingID != "" {
		conds.Unit = append(conds.Unit, Eq{Field: FieldUnitBuildingID, Value: fs.BuildingID})
	}
	if fs.LayoutID != "" {
		conds.Unit = append(conds.Unit, Eq{Field: FieldUnitLayoutID, Value: fs.LayoutID})
	}
	if fs.Floor != "" {
		floor, err := strconv.Atoi(fs.Floor)
		if err != nil {
			return Conditions{}, &InvalidFilterError{Param: "floor", Value: fs.Floor}
		}
		conds.Unit = append(conds.Unit, Eq{Field: FieldUnitFloor, Value: floor})
	}
	if fs.UnitQuery != "" {
		conds.Unit = append(conds.Unit, Or{Conds: []Condition{
			Contains{Field: FieldUnitName, Value: fs.UnitQuery},
			Contains{Field: FieldUnitNumber, Value: fs.UnitQuery},
		}})
	}

	// Project scope.
	if bucket, ok := completionBuckets[fs.Completion]; ok {
		conds.Project = append(conds.Project, Eq{Field: FieldProjectConstruction, Value: bucket})
	}

	// Each selected amenity must be present on the project.
	for _, name := range fs.Amenities {
		if name == "" {
			continue
		}
		conds.Project = append(conds.Project, HasAmenity{Names: []string{name}})
	}

	if fs.ProjectID != "" {
		conds.Project = append(conds.Project, Eq{Field: FieldProjectID, Value: fs.ProjectID})
	}
	if fs.DeveloperID != "" {
		conds.Project = append(conds.Project, Eq{Field: FieldProjectDeveloperID, Value: fs.DeveloperID})
	}
	if fs.LocationID != "" {
		conds.Project = append(conds.Project, Eq{Field: FieldLocationID, Value: fs.LocationID})
	}

	// Free text expands across name translations and the location, but ONLY
	// when no direct id filter is present: an id-scoped request must not be
	// diluted by an unrelated text match.
	if fs.Query != "" && !fs.HasDirectID() {
		conds.Project = append(conds.Project, Or{Conds: []Condition{
			Contains{Field: FieldProjectName, Value: fs.Query},
			Contains{Field: FieldLocationAddress, Value: fs.Query},
			Contains{Field: FieldLocationDistrict, Value: fs.Query},
			Contains{Field: FieldLocationCity, Value: fs.Query},
		}})
	}

	return conds, nil
}

// countCondition resolves a bedroom or bathroom filter value. The "st"
// sentinel selects studios (count 0) and "4" is the open-ended upper bucket;
// any other value must be a literal integer.
func countCondition(param, raw string, field Field) (Condition, error) {
	switch raw {
	case SentinelStudio:
		return Eq{Field: field, Value: 0}, nil
	case SentinelFourPlus:
		return Range{Field: field, Min: ptr(4)}, nil
	default:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &InvalidFilterError{Param: param, Value: raw}
		}

		return Eq{Field: field, Value: n}, nil
	}
}

// rangeCondition builds an optional-bounded range. Both bounds omitted means
// no condition at all, which keeps "no filter" distinct from "zero-to-zero".
func rangeCondition(field Field, minParam, minRaw, maxParam, maxRaw string) (*Range, error) {
	min, err := parseBound(minParam, minRaw)
	if err != nil {
		return nil, err
	}
	max, err := parseBound(maxParam, maxRaw)
	if err != nil {
		return nil, err
	}
	if min == nil && max == nil {
		return nil, nil
	}

	return &Range{Field: field, Min: min, Max: max}, nil
}

func parseBound(param, raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	// ParseFloat accepts "NaN" and "Inf"; neither is a usable bound.
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, &InvalidFilterError{Param: param, Value: raw}
	}

	return &v, nil
}

// featureCondition builds the OR-of-three-strategies match for a feature
// token: a features-collection entry under any historical spelling, the
// "Sea View" substring in the free-text view field for sea_view, and the
// layout boolean flag for "has"-prefixed variants. All three checks cope
// with inconsistent historical data shapes and must all be preserved.
func featureCondition(token string) Condition {
	variants := NormalizeFeature(token)

	alternatives := []Condition{HasFeature{Names: variants}}

	if token == "sea_view" {
		alternatives = append(alternatives, Contains{Field: FieldUnitView, Value: "Sea View"})
	}

	for _, variant := range variants {
		if strings.HasPrefix(variant, "has") {
			alternatives = append(alternatives, LayoutFlag{Name: variant})
		}
	}

	if len(alternatives) == 1 {
		return alternatives[0]
	}

	return Or{Conds: alternatives}
}

package search

import (
	"fmt"
)

// Type discriminates which entity a search paginates.
type Type string

const (
	TypeUnits    Type = "units"
	TypeProjects Type = "projects"
)

// ParseType normalizes a requested search type, defaulting to projects.
func ParseType(raw string) Type {
	if raw == string(TypeUnits) {
		return TypeUnits
	}

	return TypeProjects
}

// Sentinel values accepted by the bedroom and bathroom filters. The UI offers
// only "0,1,2,3,4+" choices, so "4" is an open-ended upper bucket and "st"
// selects studios.
const (
	SentinelStudio   = "st"
	SentinelFourPlus = "4"
)

// FilterSet is the normalized set of optional filter parameters accepted by
// the search entry points. All values arrive as strings (query string or JSON
// body) and are coerced by the builder; empty string means "no filter".
// It is constructed per request and never stored.
type FilterSet struct {
	PropertyType string   `json:"propertyType"` // Matches the related layout's type.
	Bedrooms     string   `json:"bedrooms"`     // Numeric, or "st" / "4" sentinels.
	Bathrooms    string   `json:"bathrooms"`    // Same sentinels as bedrooms.
	PriceMin     string   `json:"priceMin"`
	PriceMax     string   `json:"priceMax"`
	AreaMin      string   `json:"areaMin"`
	AreaMax      string   `json:"areaMax"`
	Completion   string   `json:"completion"` // ready | under_construction | off_plan.
	Features     []string `json:"features"`
	Amenities    []string `json:"amenities"`
	Query        string   `json:"query"` // Free text; suppressed by any direct id filter.

	// Direct id filters. When any is present the free-text query is ignored:
	// an id-scoped request must not be diluted by an unrelated text match.
	ProjectID   string `json:"projectId"`
	DeveloperID string `json:"developerId"`
	LocationID  string `json:"locationId"`

	// Mass-edit dimensions, used by the admin surface against a single
	// project's unit list. They share the builder with the public filters.
	Status     string `json:"status"`
	BuildingID string `json:"buildingId"`
	Floor      string `json:"floor"`
	LayoutID   string `json:"layoutId"`
	UnitQuery  string `json:"unitQuery"` // Substring over unit name and number.
}

// HasDirectID reports whether any direct id filter is present.
func (f FilterSet) HasDirectID() bool {
	return f.ProjectID != "" || f.DeveloperID != "" || f.LocationID != ""
}

// InvalidFilterError reports a filter parameter that could not be coerced to
// its expected type. Callers surface it as a 400-class response.
type InvalidFilterError struct {
	Param string
	Value string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid value %q for filter %q", e.Value, e.Param)
}

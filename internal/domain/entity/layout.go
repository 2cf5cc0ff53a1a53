package entity

import (
	"github.com/google/uuid"
)

// Layout is a reusable floor-plan template referenced by zero or more units.
// Its Type field is the propertyType key used by the public search filter.
type Layout struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Name      string    `json:"name"` // Display name, e.g. "Type B corner".
	Type      string    `json:"type"` // Filter key, e.g. "studio", "1br", "2br".
	Bedrooms  int       `json:"bedrooms"`
	Bathrooms int       `json:"bathrooms"`
	TotalArea float64   `json:"total_area"` // Square meters.

	// Boolean flags kept for historical data where a feature lives on the
	// layout instead of the unit's features collection.
	HasPets      bool `json:"has_pets"`
	HasSmartHome bool `json:"has_smart_home"`
	HasParking   bool `json:"has_parking"`
	HasBalcony   bool `json:"has_balcony"`
}

// Flag resolves a "has"-prefixed stored feature name to the matching layout
// flag. Unknown names report false.
func (l *Layout) Flag(name string) bool {
	switch name {
	case "hasPets":
		return l.HasPets
	case "hasSmartHome":
		return l.HasSmartHome
	case "hasParking":
		return l.HasParking
	case "hasBalcony":
		return l.HasBalcony
	default:
		return false
	}
}

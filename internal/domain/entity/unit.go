package entity

import (
	"time"

	"github.com/google/uuid"
)

// UnitStatus is the sales state of a unit.
type UnitStatus string

const (
	UnitStatusAvailable UnitStatus = "AVAILABLE"
	UnitStatusReserved  UnitStatus = "RESERVED"
	UnitStatusSold      UnitStatus = "SOLD"
)

// Unit represents one sellable item within a project: an apartment or villa
// instance. A price of 0 means the unit is not listed for sale and is excluded
// from public unit search results.
type Unit struct {
	ID         uuid.UUID  `json:"id"`
	ProjectID  uuid.UUID  `json:"project_id"`            // The owning project.
	BuildingID *uuid.UUID `json:"building_id,omitempty"` // Optional building within the project.
	LayoutID   *uuid.UUID `json:"layout_id,omitempty"`   // Optional floor-plan template.
	Name       string     `json:"name"`                  // Display name, e.g. "A-1204".
	Number     string     `json:"number"`                // Unit number within the building.
	Status     UnitStatus `json:"status"`
	Floor      int        `json:"floor"`
	Price      float64    `json:"price"`          // 0 means not listed for sale.
	Bedrooms   int        `json:"bedrooms"`       // 0 for studios.
	Bathrooms  int        `json:"bathrooms"`
	Area       *float64   `json:"area,omitempty"` // Denormalized from the layout when present.
	View       string     `json:"view"`           // Free-text view description, e.g. "Partial Sea View".
	Features   []string   `json:"features"`       // Stored feature names; historical spellings vary.

	Layout *Layout `json:"layout,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsListed reports whether the unit may appear in public search results.
func (u *Unit) IsListed() bool {
	return u.Price > 0
}

// HasFeature reports whether any of the given stored names is present in the
// unit's features collection.
func (u *Unit) HasFeature(names ...string) bool {
	for _, have := range u.Features {
		for _, want := range names {
			if have == want {
				return true
			}
		}
	}

	return false
}

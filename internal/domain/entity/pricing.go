package entity

import (
	"github.com/google/uuid"
)

// Pricing is the project-level pricing summary. Individual sale prices live on
// units; this sub-entity is display metadata and is not wired into unit sort.
type Pricing struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	BasePrice   float64   `json:"base_price"` // Starting price advertised for the project.
	PricePerSqm float64   `json:"price_per_sqm"`
	Currency    string    `json:"currency"` // ISO 4217 code.
}

// Yield is the projected investment yield for a project.
type Yield struct {
	ID            uuid.UUID `json:"id"`
	ProjectID     uuid.UUID `json:"project_id"`
	GrossYield    float64   `json:"gross_yield"`    // Percent.
	NetYield      float64   `json:"net_yield"`      // Percent.
	OccupancyRate float64   `json:"occupancy_rate"` // Percent.
}

package entity

import (
	"github.com/google/uuid"
)

// Location carries the address and coordinates of a project, one-to-one with
// it, plus two derived distances used for filtering and display.
type Location struct {
	ID             uuid.UUID `json:"id"`
	ProjectID      uuid.UUID `json:"project_id"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	District       string    `json:"district"`
	Country        string    `json:"country"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	BeachDistance  float64   `json:"beach_distance"`  // Meters to the nearest beach reference point.
	CenterDistance float64   `json:"center_distance"` // Meters to the city center reference point.
}

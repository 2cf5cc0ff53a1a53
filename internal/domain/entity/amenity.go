package entity

import (
	"github.com/google/uuid"
)

// Amenity is a named facility associated with projects, e.g. "Infinity Pool".
// Uniqueness is by name; projects reference amenities through a join table.
type Amenity struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

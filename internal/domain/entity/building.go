package entity

import (
	"github.com/google/uuid"
)

// Building is a physical structure within a project that groups units.
type Building struct {
	ID         uuid.UUID `json:"id"`
	ProjectID  uuid.UUID `json:"project_id"`
	Name       string    `json:"name"` // e.g. "Tower A".
	FloorCount int       `json:"floor_count"`
}

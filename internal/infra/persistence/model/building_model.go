package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BuildingModel is the GORM-specific struct for the 'buildings' table.
type BuildingModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ProjectID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"size:255;not null"`
	FloorCount int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (BuildingModel) TableName() string {
	return "buildings"
}

// BeforeCreate assigns an application-side UUID.
func (m *BuildingModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

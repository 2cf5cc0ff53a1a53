package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AmenityModel is the GORM-specific struct for the 'amenities' table.
// Amenities are a shared catalog; projects reference them through the
// 'project_amenities' join table.
type AmenityModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Name string    `gorm:"size:128;not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (AmenityModel) TableName() string {
	return "amenities"
}

// BeforeCreate assigns an application-side UUID.
func (m *AmenityModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnitModel is the GORM-specific struct for the 'units' table.
// A price of 0 marks the unit as not listed for sale.
type UnitModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	ProjectID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	BuildingID *uuid.UUID `gorm:"type:uuid;index"`
	LayoutID   *uuid.UUID `gorm:"type:uuid;index"`
	Name       string     `gorm:"size:255;not null"`
	Number     string     `gorm:"size:64"`
	Status     string     `gorm:"size:16;not null;default:AVAILABLE;index"`
	Floor      int        `gorm:"not null;default:0"`
	Price      float64    `gorm:"type:decimal(14,2);not null;default:0;index"`
	Bedrooms   int        `gorm:"not null;default:0"`
	Bathrooms  int        `gorm:"not null;default:0"`
	Area       *float64   `gorm:"type:decimal(10,2)"`
	View       string     `gorm:"size:255"`

	Layout   *LayoutModel        `gorm:"foreignKey:LayoutID"`
	Features []*UnitFeatureModel `gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UnitModel) TableName() string {
	return "units"
}

// BeforeCreate assigns an application-side UUID.
func (m *UnitModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// UnitFeatureModel is the GORM-specific struct for the 'unit_features' table.
// One row per stored feature name; spellings vary across historical data.
type UnitFeatureModel struct {
	UnitID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"size:128;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (UnitFeatureModel) TableName() string {
	return "unit_features"
}

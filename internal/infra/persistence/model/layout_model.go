package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LayoutModel is the GORM-specific struct for the 'layouts' table.
// Its type column is the propertyType key used by the public search filter.
type LayoutModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"size:255;not null"`
	Type      string    `gorm:"size:32;not null;index"`
	Bedrooms  int       `gorm:"not null;default:0"`
	Bathrooms int       `gorm:"not null;default:0"`
	TotalArea float64   `gorm:"type:decimal(10,2)"`

	HasPets      bool `gorm:"not null;default:false"`
	HasSmartHome bool `gorm:"not null;default:false"`
	HasParking   bool `gorm:"not null;default:false"`
	HasBalcony   bool `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (LayoutModel) TableName() string {
	return "layouts"
}

// BeforeCreate assigns an application-side UUID.
func (m *LayoutModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

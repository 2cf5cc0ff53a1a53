package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeveloperModel is the GORM-specific struct for the 'developers' table.
type DeveloperModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	Slug            string    `gorm:"size:255;not null;uniqueIndex"`
	EstablishedYear int       `gorm:"not null;default:0"`

	Translations []*DeveloperTranslationModel `gorm:"foreignKey:DeveloperID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeveloperModel) TableName() string {
	return "developers"
}

// BeforeCreate assigns an application-side UUID.
func (m *DeveloperModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// DeveloperTranslationModel is the GORM-specific struct for the
// 'developer_translations' table.
type DeveloperTranslationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	DeveloperID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_developer_translations_lang"`
	Language    string    `gorm:"size:16;not null;uniqueIndex:idx_developer_translations_lang"`
	Name        string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (DeveloperTranslationModel) TableName() string {
	return "developer_translations"
}

// BeforeCreate assigns an application-side UUID.
func (m *DeveloperTranslationModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

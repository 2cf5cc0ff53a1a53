// Package model contains the GORM-specific structs mapping the domain
// entities onto the relational schema.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectModel is the GORM-specific struct for the 'projects' table.
// It is the aggregate root: owned relations cascade on delete.
type ProjectModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Slug               string    `gorm:"size:255;not null;uniqueIndex"`
	Type               string    `gorm:"size:32;not null"`
	Status             string    `gorm:"size:32;not null;index"`
	Class              string    `gorm:"size:32"`
	ConstructionStatus string    `gorm:"size:32;not null;index"`
	LandArea           float64
	BuildingCount      int
	UnitCount          int
	TransportScore     int
	AmenitiesScore     int
	SafetyScore        int
	DeveloperID        uuid.UUID `gorm:"type:uuid;not null;index"`

	Developer    *DeveloperModel            `gorm:"foreignKey:DeveloperID"`
	Location     *LocationModel             `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Pricing      *PricingModel              `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Yield        *YieldModel                `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Units        []*UnitModel               `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Buildings    []*BuildingModel           `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Layouts      []*LayoutModel             `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Amenities    []*AmenityModel            `gorm:"many2many:project_amenities;joinForeignKey:ProjectID;joinReferences:AmenityID;constraint:OnDelete:CASCADE"`
	Media        []*MediaModel              `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Documents    []*DocumentModel           `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Translations []*ProjectTranslationModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}

// BeforeCreate assigns an application-side UUID so the schema works on
// databases without a UUID default expression.
func (m *ProjectModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// ProjectTranslationModel is the GORM-specific struct for the
// 'project_translations' table. One row per (project, language).
type ProjectTranslationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_project_translations_lang"`
	Language    string    `gorm:"size:16;not null;uniqueIndex:idx_project_translations_lang"`
	Name        string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ProjectTranslationModel) TableName() string {
	return "project_translations"
}

// BeforeCreate assigns an application-side UUID.
func (m *ProjectTranslationModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// LocationModel is the GORM-specific struct for the 'locations' table,
// one-to-one with a project.
type LocationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	ProjectID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Address        string    `gorm:"size:512"`
	City           string    `gorm:"size:128;index"`
	District       string    `gorm:"size:128;index"`
	Country        string    `gorm:"size:128"`
	Latitude       float64   `gorm:"type:decimal(9,6)"`
	Longitude      float64   `gorm:"type:decimal(9,6)"`
	BeachDistance  float64   `gorm:"type:decimal(10,2)"`
	CenterDistance float64   `gorm:"type:decimal(10,2)"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// BeforeCreate assigns an application-side UUID.
func (m *LocationModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// PricingModel is the GORM-specific struct for the 'pricings' table.
type PricingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BasePrice   float64   `gorm:"type:decimal(14,2)"`
	PricePerSqm float64   `gorm:"type:decimal(14,2)"`
	Currency    string    `gorm:"size:8"`
}

// TableName explicitly sets the table name for GORM.
func (PricingModel) TableName() string {
	return "pricings"
}

// BeforeCreate assigns an application-side UUID.
func (m *PricingModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// YieldModel is the GORM-specific struct for the 'yields' table.
type YieldModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	ProjectID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	GrossYield    float64   `gorm:"type:decimal(5,2)"`
	NetYield      float64   `gorm:"type:decimal(5,2)"`
	OccupancyRate float64   `gorm:"type:decimal(5,2)"`
}

// TableName explicitly sets the table name for GORM.
func (YieldModel) TableName() string {
	return "yields"
}

// BeforeCreate assigns an application-side UUID.
func (m *YieldModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// MediaModel is the GORM-specific struct for the 'media' table.
type MediaModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind      string    `gorm:"size:16;not null"`
	URL       string    `gorm:"size:1024;not null"`
	Position  int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (MediaModel) TableName() string {
	return "media"
}

// BeforeCreate assigns an application-side UUID.
func (m *MediaModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// DocumentModel is the GORM-specific struct for the 'documents' table.
type DocumentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"size:255;not null"`
	URL       string    `gorm:"size:1024;not null"`
	Kind      string    `gorm:"size:32"`
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "documents"
}

// BeforeCreate assigns an application-side UUID.
func (m *DocumentModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

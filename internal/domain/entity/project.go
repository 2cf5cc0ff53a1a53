// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus is the publication state of a project listing.
type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusPublished ProjectStatus = "published"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// ProjectType classifies the development as a whole.
type ProjectType string

const (
	ProjectTypeResidential ProjectType = "residential"
	ProjectTypeCommercial  ProjectType = "commercial"
	ProjectTypeMixedUse    ProjectType = "mixed_use"
)

// ConstructionStatus is the fine-grained construction state of a project.
// The public completion filter collapses these into coarse buckets.
type ConstructionStatus string

const (
	ConstructionStatusCompleted         ConstructionStatus = "completed"
	ConstructionStatusUnderConstruction ConstructionStatus = "under_construction"
	ConstructionStatusOffPlan           ConstructionStatus = "off_plan"
)

// Project represents a real-estate development: the aggregate root that owns
// units, media, documents, pricing and the amenity set. Location and Developer
// are referenced, not owned.
type Project struct {
	ID                 uuid.UUID          `json:"id"`                  // The unique identifier for the project.
	Slug               string             `json:"slug"`                // URL slug; unique and immutable once published.
	Type               ProjectType        `json:"type"`                // Development classification.
	Status             ProjectStatus      `json:"status"`              // Publication state.
	Class              string             `json:"class"`               // Market class, e.g. "comfort" or "business".
	ConstructionStatus ConstructionStatus `json:"construction_status"` // Fine-grained construction state.
	LandArea           float64            `json:"land_area"`           // Land area in square meters.
	BuildingCount      int                `json:"building_count"`      // Number of buildings on the site.
	UnitCount          int                `json:"unit_count"`          // Denormalized total number of units.
	TransportScore     int                `json:"transport_score"`     // Public transport score, 0-10.
	AmenitiesScore     int                `json:"amenities_score"`     // On-site amenities score, 0-10.
	SafetyScore        int                `json:"safety_score"`        // Neighborhood safety score, 0-10.
	DeveloperID        uuid.UUID          `json:"developer_id"`        // The developer this project references.

	Developer    *Developer            `json:"developer,omitempty"`
	Location     *Location             `json:"location,omitempty"`
	Pricing      *Pricing              `json:"pricing,omitempty"`
	Yield        *Yield                `json:"yield,omitempty"`
	Units        []*Unit               `json:"units,omitempty"`
	Buildings    []*Building           `json:"buildings,omitempty"`
	Amenities    []*Amenity            `json:"amenities,omitempty"`
	Media        []*Media              `json:"media,omitempty"`
	Documents    []*Document           `json:"documents,omitempty"`
	Translations []*ProjectTranslation `json:"translations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPublished reports whether the project is visible to the public surface.
func (p *Project) IsPublished() bool {
	return p.Status == ProjectStatusPublished
}

// Translation returns the translation for the given language, or nil.
func (p *Project) Translation(language string) *ProjectTranslation {
	for _, tr := range p.Translations {
		if tr.Language == language {
			return tr
		}
	}

	return nil
}

// ProjectTranslation carries the language-specific name and description of a
// project. Exactly one translation exists per supported language.
type ProjectTranslation struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Language    string    `json:"language"` // BCP 47 language code, e.g. "en".
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

package usecase

import (
	"context"

	"homio/internal/domain/entity"

	"github.com/google/uuid"
)

// TranslationInput is one language's name and description.
type TranslationInput struct {
	Language    string `json:"language" validate:"required,bcp47_language_tag"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// LocationInput carries the address and coordinates of a project. The two
// display distances are derived from the coordinates, never accepted as input.
type LocationInput struct {
	Address   string  `json:"address" validate:"required"`
	City      string  `json:"city" validate:"required"`
	District  string  `json:"district"`
	Country   string  `json:"country" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// PricingInput is the project-level pricing summary.
type PricingInput struct {
	BasePrice   float64 `json:"basePrice" validate:"min=0"`
	PricePerSqm float64 `json:"pricePerSqm" validate:"min=0"`
	Currency    string  `json:"currency" validate:"required,iso4217"`
}

// ProjectInput is the full-replace payload of project create and update.
type ProjectInput struct {
	Slug               string             `json:"slug" validate:"required,lowercase"`
	Type               string             `json:"type" validate:"required,oneof=residential commercial mixed_use"`
	Status             string             `json:"status" validate:"omitempty,oneof=draft published archived"`
	Class              string             `json:"class"`
	ConstructionStatus string             `json:"constructionStatus" validate:"required,oneof=completed under_construction off_plan"`
	LandArea           float64            `json:"landArea" validate:"min=0"`
	TransportScore     int                `json:"transportScore" validate:"min=0,max=10"`
	AmenitiesScore     int                `json:"amenitiesScore" validate:"min=0,max=10"`
	SafetyScore        int                `json:"safetyScore" validate:"min=0,max=10"`
	DeveloperID        uuid.UUID          `json:"developerId" validate:"required"`
	Location           *LocationInput     `json:"location"`
	Pricing            *PricingInput      `json:"pricing"`
	Translations       []TranslationInput `json:"translations"`
	Amenities          []string           `json:"amenities"`
}

// ProjectListResult is the paginated project listing envelope.
type ProjectListResult struct {
	Projects    []*entity.Project `json:"projects"`
	TotalCount  int64             `json:"totalCount"`
	CurrentPage int               `json:"currentPage"`
	TotalPages  int               `json:"totalPages"`
}

// ProjectUsecase defines the interface for project management use cases
type ProjectUsecase interface {
	// CreateProject persists a new project aggregate. A published project
	// must carry exactly one translation per supported language.
	CreateProject(ctx context.Context, input ProjectInput) (*entity.Project, error)

	// GetProject retrieves a fully hydrated project by ID.
	GetProject(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// GetProjectBySlug retrieves a fully hydrated project by its URL slug.
	GetProjectBySlug(ctx context.Context, slug string) (*entity.Project, error)

	// ListProjects retrieves a page of projects, newest first.
	ListProjects(ctx context.Context, page, limit string) (*ProjectListResult, error)

	// UpdateProject replaces the project's own fields, translations and
	// amenity set. The slug of a published project is immutable.
	UpdateProject(ctx context.Context, id uuid.UUID, input ProjectInput) (*entity.Project, error)

	// DeleteProject removes a project and everything it owns.
	DeleteProject(ctx context.Context, id uuid.UUID) error

	// GenerateShareQR renders a PNG QR code pointing at the project's
	// public listing page.
	GenerateShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)

	// ListAmenities retrieves the amenity catalog.
	ListAmenities(ctx context.Context) ([]*entity.Amenity, error)
}

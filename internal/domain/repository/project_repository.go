// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"homio/internal/domain/entity"
	"homio/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for project persistence.
var (
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrDuplicateSlug is returned when creating a project whose slug is already taken.
	ErrDuplicateSlug = errors.New("project slug already exists")
)

// ProjectRepository defines the standard operations for project persistence.
// The project is the aggregate root: creating or deleting one carries its
// units, buildings, media, documents, translations, pricing, yield and
// amenity joins along with it. Location is saved with the project; the
// developer is only referenced.
type ProjectRepository interface {
	// Create persists a new project aggregate together with its owned relations.
	Create(ctx context.Context, project *entity.Project) error

	// FindByID retrieves a fully hydrated project by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindBySlug retrieves a fully hydrated project by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Project, error)

	// List retrieves a page of projects ordered by creation time descending,
	// together with the total count.
	List(ctx context.Context, offset, limit int) ([]*entity.Project, int64, error)

	// Update modifies the project's own columns and replaces its translations
	// and amenity set.
	Update(ctx context.Context, project *entity.Project) error

	// Delete removes a project and cascades to everything it owns.
	Delete(ctx context.Context, id uuid.UUID) error
}

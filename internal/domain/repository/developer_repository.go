package repository

import (
	"context"

	"homio/internal/domain/entity"
	"homio/internal/errors"

	"github.com/google/uuid"
)

// ErrDeveloperNotFound is returned when a developer is not found.
var ErrDeveloperNotFound = errors.New("developer not found")

// DeveloperRepository defines the operations for developer persistence.
// Developers are referenced by projects, never owned by them.
type DeveloperRepository interface {
	// FindByID retrieves a developer with its translations.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Developer, error)

	// Create persists a new developer with its translations.
	Create(ctx context.Context, developer *entity.Developer) error
}

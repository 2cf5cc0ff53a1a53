package entity

import (
	"time"

	"github.com/google/uuid"
)

// Developer is the company behind one or more projects. Projects reference a
// developer; deleting a project never touches it.
type Developer struct {
	ID              uuid.UUID               `json:"id"`
	Slug            string                  `json:"slug"`
	EstablishedYear int                     `json:"established_year"`
	Translations    []*DeveloperTranslation `json:"translations,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// DeveloperTranslation carries the language-specific name and description of a
// developer.
type DeveloperTranslation struct {
	ID          uuid.UUID `json:"id"`
	DeveloperID uuid.UUID `json:"developer_id"`
	Language    string    `json:"language"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

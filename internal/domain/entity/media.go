package entity

import (
	"github.com/google/uuid"
)

// MediaKind distinguishes images from videos.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// Media is a gallery asset owned by a project.
type Media struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Kind      MediaKind `json:"kind"`
	URL       string    `json:"url"`
	Position  int       `json:"position"` // Gallery ordering, ascending.
}

// Document is a downloadable file owned by a project, e.g. a brochure.
type Document struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Kind      string    `json:"kind"` // e.g. "brochure", "floor_plan", "price_list".
}

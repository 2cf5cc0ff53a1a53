// Package usecase defines the application-layer interfaces and their
// request/response shapes.
package usecase

import (
	"context"

	"homio/internal/domain/entity"
	"homio/internal/domain/search"
)

// SearchRequest is the normalized input of a catalog search. Every value is
// optional; pagination and sort fall back to defaults rather than erroring.
type SearchRequest struct {
	// Type selects what to paginate: "units" or "projects" (the default).
	Type string `json:"searchType"`

	Filters search.FilterSet `json:"filters"`

	SortBy        string `json:"sortBy"`        // "price", "completion" or "relevance".
	SortDirection string `json:"sortDirection"` // "asc" or "desc".
	Page          string `json:"page"`
	Limit         string `json:"limit"`
}

// SearchResult is the paginated search envelope. Exactly one of Projects and
// Units is populated, matching the requested type.
type SearchResult struct {
	Type        search.Type       `json:"searchType"`
	Projects    []*entity.Project `json:"projects,omitempty"`
	Units       []*entity.Unit    `json:"units,omitempty"`
	TotalCount  int64             `json:"totalCount"`
	CurrentPage int               `json:"currentPage"`
	PageSize    int               `json:"pageSize"`
	TotalPages  int               `json:"totalPages"`
}

// SearchUsecase defines the interface for catalog search use cases
type SearchUsecase interface {
	// Search runs one paginated search. The total count and the page are
	// computed from the same predicate. A malformed filter value surfaces
	// as a *search.InvalidFilterError.
	Search(ctx context.Context, req SearchRequest) (*SearchResult, error)
}

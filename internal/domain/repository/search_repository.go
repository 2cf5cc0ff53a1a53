package repository

import (
	"context"

	"homio/internal/domain/entity"
	"homio/internal/domain/search"
)

// SearchQuery bundles the resolved predicate, sort and page window for one
// search request. The count and the page fetch MUST be computed from this
// same value so the two can never drift apart.
type SearchQuery struct {
	Conds search.Conditions
	Sort  search.Sort
	Page  search.Page
}

// SearchRepository translates the condition representation into store
// queries. Both operations return the current page and the total match count
// computed against the identical predicate.
type SearchRepository interface {
	// SearchProjects paginates projects. Unit-scope conditions nest inside a
	// "has at least one matching unit" relation condition; project-scope
	// conditions apply directly. Results are hydrated with translations,
	// location, media, developer and amenities.
	SearchProjects(ctx context.Context, query SearchQuery) ([]*entity.Project, int64, error)

	// SearchUnits paginates units. Unit-scope conditions apply directly and
	// project-scope conditions apply through the owning project. Results are
	// hydrated with their layouts.
	SearchUnits(ctx context.Context, query SearchQuery) ([]*entity.Unit, int64, error)
}

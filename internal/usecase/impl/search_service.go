// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"

	"homio/internal/domain/repository"
	"homio/internal/domain/search"
	"homio/internal/usecase"

	"go.uber.org/fx"
)

type searchService struct {
	searchRepo repository.SearchRepository
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	SearchRepo repository.SearchRepository
}

// NewSearchService creates a new search service instance
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		searchRepo: params.SearchRepo,
	}
}

// Search runs one paginated search. The predicate, sort and page window are
// resolved once and handed to the repository as a single query value, so the
// count and the page can never drift apart.
func (s *searchService) Search(ctx context.Context, req usecase.SearchRequest) (*usecase.SearchResult, error) {
	typ := search.ParseType(req.Type)

	conds, err := search.Build(typ, req.Filters)
	if err != nil {
		// Pass *search.InvalidFilterError through untouched for the
		// delivery layer to surface as a 400.
		return nil, err
	}

	query := repository.SearchQuery{
		Conds: conds,
		Sort:  search.ResolveSort(typ, req.SortBy, req.SortDirection),
		Page:  search.ResolvePage(req.Page, req.Limit),
	}

	result := &usecase.SearchResult{
		Type:        typ,
		CurrentPage: query.Page.Number,
		PageSize:    query.Page.Limit,
	}

	switch typ {
	case search.TypeUnits:
		units, total, err := s.searchRepo.SearchUnits(ctx, query)
		if err != nil {
			return nil, err
		}
		result.Units = units
		result.TotalCount = total
	default:
		projects, total, err := s.searchRepo.SearchProjects(ctx, query)
		if err != nil {
			return nil, err
		}
		result.Projects = projects
		result.TotalCount = total
	}

	result.TotalPages = query.Page.TotalPages(result.TotalCount)

	return result, nil
}

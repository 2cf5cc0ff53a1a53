package impl

import (
	"context"
	"testing"

	"homio/internal/domain/entity"
	"homio/internal/domain/repository"
	"homio/internal/domain/search"
	mockRepo "homio/internal/mocks/repository"
	"homio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSearchService(searchRepo repository.SearchRepository) usecase.SearchUsecase {
	return NewSearchService(SearchServiceParams{SearchRepo: searchRepo})
}

func TestSearchService_Search_ProjectsDefault(t *testing.T) {
	mockSearchRepo := mockRepo.NewMockSearchRepository(t)
	service := newSearchService(mockSearchRepo)
	ctx := context.Background()

	var captured repository.SearchQuery
	mockSearchRepo.EXPECT().
		SearchProjects(ctx, mock.AnythingOfType("repository.SearchQuery")).
		Run(func(_ context.Context, query repository.SearchQuery) {
			captured = query
		}).
		Return([]*entity.Project{{Slug: "marina-heights"}}, int64(41), nil)

	result, err := service.Search(ctx, usecase.SearchRequest{})
	require.NoError(t, err)

	assert.Equal(t, search.TypeProjects, result.Type)
	assert.Len(t, result.Projects, 1)
	assert.Nil(t, result.Units)
	assert.Equal(t, int64(41), result.TotalCount)
	assert.Equal(t, 1, result.CurrentPage)
	assert.Equal(t, search.DefaultLimit, result.PageSize)
	assert.Equal(t, 3, result.TotalPages)

	// Defaults: first page, newest first.
	assert.Equal(t, 0, captured.Page.Offset)
	assert.Equal(t, search.SortKeyCreatedAt, captured.Sort.Key)
	assert.True(t, captured.Sort.Desc)
}

func TestSearchService_Search_Units(t *testing.T) {
	mockSearchRepo := mockRepo.NewMockSearchRepository(t)
	service := newSearchService(mockSearchRepo)
	ctx := context.Background()

	var captured repository.SearchQuery
	mockSearchRepo.EXPECT().
		SearchUnits(ctx, mock.AnythingOfType("repository.SearchQuery")).
		Run(func(_ context.Context, query repository.SearchQuery) {
			captured = query
		}).
		Return([]*entity.Unit{{Name: "A-101", Price: 250000}}, int64(1), nil)

	result, err := service.Search(ctx, usecase.SearchRequest{
		Type: "units",
		Filters: search.FilterSet{
			Bedrooms: "st",
			PriceMax: "300000",
		},
		SortBy:        "price",
		SortDirection: "asc",
		Page:          "2",
		Limit:         "10",
	})
	require.NoError(t, err)

	assert.Equal(t, search.TypeUnits, result.Type)
	assert.Len(t, result.Units, 1)
	assert.Equal(t, int64(1), result.TotalCount)
	assert.Equal(t, 2, result.CurrentPage)
	assert.Equal(t, 10, result.PageSize)
	assert.Equal(t, 1, result.TotalPages)

	assert.Equal(t, 10, captured.Page.Offset)
	assert.Equal(t, search.SortKeyUnitPrice, captured.Sort.Key)
	assert.False(t, captured.Sort.Desc)
	// The listed-only rule and the studio sentinel both land in the
	// predicate handed to the repository.
	assert.Contains(t, captured.Conds.Unit, search.Gt{Field: search.FieldUnitPrice, Value: 0})
	assert.Contains(t, captured.Conds.Unit, search.Eq{Field: search.FieldUnitBedrooms, Value: 0})
}

func TestSearchService_Search_InvalidFilterPassesThrough(t *testing.T) {
	mockSearchRepo := mockRepo.NewMockSearchRepository(t)
	service := newSearchService(mockSearchRepo)

	result, err := service.Search(context.Background(), usecase.SearchRequest{
		Type: "units",
		Filters: search.FilterSet{
			PriceMin: "not-a-number",
		},
	})

	require.Error(t, err)
	assert.Nil(t, result)

	var invalidErr *search.InvalidFilterError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "priceMin", invalidErr.Param)
}

package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homio/internal/domain/entity"
	"homio/internal/domain/search"
	mockUC "homio/internal/mocks/usecase"
	"homio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSearchHandler(t *testing.T) (*SearchHandler, *mockUC.MockSearchUsecase) {
	t.Helper()

	searchUC := mockUC.NewMockSearchUsecase(t)
	handler := NewSearchHandler(SearchHandlerParams{
		SearchUC: searchUC,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return handler, searchUC
}

func TestSearchHandler_SearchProjects_QueryString(t *testing.T) {
	handler, searchUC := newSearchHandler(t)

	var captured usecase.SearchRequest
	searchUC.EXPECT().
		Search(mock.Anything, mock.AnythingOfType("usecase.SearchRequest")).
		Run(func(_ context.Context, req usecase.SearchRequest) {
			captured = req
		}).
		Return(&usecase.SearchResult{
			Type:        search.TypeProjects,
			Projects:    []*entity.Project{{Slug: "marina-heights"}},
			TotalCount:  1,
			CurrentPage: 1,
			PageSize:    20,
			TotalPages:  1,
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/api/projects/search?bedrooms=st&priceMax=300000&features=sea_view,smart_home&q=marina&page=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.SearchProjects(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, string(search.TypeProjects), captured.Type)
	assert.Equal(t, "st", captured.Filters.Bedrooms)
	assert.Equal(t, "300000", captured.Filters.PriceMax)
	assert.Equal(t, []string{"sea_view", "smart_home"}, captured.Filters.Features)
	assert.Equal(t, "marina", captured.Filters.Query)

	body := rec.Body.String()
	assert.Contains(t, body, `"pagination"`)
	assert.Contains(t, body, `"totalPages":1`)
	assert.Contains(t, body, "marina-heights")
}

func TestSearchHandler_Search_JSONBody(t *testing.T) {
	handler, searchUC := newSearchHandler(t)

	searchUC.EXPECT().
		Search(mock.Anything, usecase.SearchRequest{
			Type:          string(search.TypeUnits),
			Filters:       search.FilterSet{Bedrooms: "2"},
			SortBy:        "price",
			SortDirection: "asc",
			Page:          "2",
			Limit:         "10",
		}).
		Return(&usecase.SearchResult{
			Type:        search.TypeUnits,
			Units:       []*entity.Unit{{Name: "B-503"}},
			TotalCount:  11,
			CurrentPage: 2,
			PageSize:    10,
			TotalPages:  2,
		}, nil)

	payload := `{"searchType":"units","filters":{"bedrooms":"2"},"sortBy":"price","sortDirection":"asc","page":"2","limit":"10"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/projects/search", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"units"`)
	assert.Contains(t, body, `"totalCount":11`)
	assert.NotContains(t, body, `"projects"`)
}

func TestSearchHandler_Search_MalformedFilterIs400(t *testing.T) {
	handler, searchUC := newSearchHandler(t)

	searchUC.EXPECT().
		Search(mock.Anything, mock.AnythingOfType("usecase.SearchRequest")).
		Return(nil, &search.InvalidFilterError{Param: "priceMin", Value: "abc"})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/projects/search", strings.NewReader(`{"filters":{"priceMin":"abc"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Search(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "priceMin")
}

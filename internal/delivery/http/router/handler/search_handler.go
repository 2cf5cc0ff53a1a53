package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"homio/internal/delivery/http/response"
	"homio/internal/domain/search"
	"homio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler holds dependencies for the catalog search endpoints
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// projectSearchEnvelope is the GET response shape: a page of projects plus
// pagination metadata.
type projectSearchEnvelope struct {
	Projects   any                `json:"projects"`
	Pagination paginationMetadata `json:"pagination"`
}

type paginationMetadata struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// SearchProjects handles the query-string search surface. It always
// paginates projects; the JSON body variant is the one that can switch to
// units.
func (h *SearchHandler) SearchProjects(c echo.Context) error {
	req := usecase.SearchRequest{
		Type:    string(search.TypeProjects),
		Filters: filterSetFromQuery(c),
		Page:    c.QueryParam("page"),
		Limit:   c.QueryParam("limit"),
	}

	result, err := h.searchUC.Search(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, projectSearchEnvelope{
		Projects: result.Projects,
		Pagination: paginationMetadata{
			Total:      result.TotalCount,
			Page:       result.CurrentPage,
			Limit:      result.PageSize,
			TotalPages: result.TotalPages,
		},
	}, "Projects retrieved successfully")
}

// Search handles the JSON body search surface, which carries the same
// logical filters plus the search type and sort selection.
func (h *SearchHandler) Search(c echo.Context) error {
	var req usecase.SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	result, err := h.searchUC.Search(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Search completed successfully")
}

// filterSetFromQuery maps the query string onto the filter dimensions. CSV
// lists keep their historical shape; empty values mean "no filter".
func filterSetFromQuery(c echo.Context) search.FilterSet {
	return search.FilterSet{
		PropertyType: c.QueryParam("propertyType"),
		Bedrooms:     c.QueryParam("bedrooms"),
		Bathrooms:    c.QueryParam("bathrooms"),
		PriceMin:     c.QueryParam("priceMin"),
		PriceMax:     c.QueryParam("priceMax"),
		AreaMin:      c.QueryParam("areaMin"),
		AreaMax:      c.QueryParam("areaMax"),
		Completion:   c.QueryParam("completion"),
		Features:     splitCSV(c.QueryParam("features")),
		Amenities:    splitCSV(c.QueryParam("amenities")),
		Query:        c.QueryParam("q"),
		ProjectID:    c.QueryParam("projectId"),
		DeveloperID:  c.QueryParam("developerId"),
		LocationID:   c.QueryParam("locationId"),
	}
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}

	var values []string
	for _, value := range strings.Split(raw, ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}

	return values
}

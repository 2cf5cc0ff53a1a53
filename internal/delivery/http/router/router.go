// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"homio/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SearchHandler  *handler.SearchHandler
	ProjectHandler *handler.ProjectHandler
	UnitHandler    *handler.UnitHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler  *handler.SearchHandler
	projectHandler *handler.ProjectHandler
	unitHandler    *handler.UnitHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler:  params.SearchHandler,
		projectHandler: params.ProjectHandler,
		unitHandler:    params.UnitHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public catalog search. The GET surface paginates projects from the
	// query string; the POST surface carries the same filters in a JSON
	// body and can switch to units.
	api.GET("/projects/search", r.searchHandler.SearchProjects)
	api.POST("/projects/search", r.searchHandler.Search)

	// Project management
	projectGroup := api.Group("/projects")
	{
		projectGroup.POST("", r.projectHandler.CreateProject)
		projectGroup.GET("", r.projectHandler.ListProjects)
		projectGroup.GET("/slug/:slug", r.projectHandler.GetProjectBySlug)
		projectGroup.GET("/:id", r.projectHandler.GetProject)
		projectGroup.PUT("/:id", r.projectHandler.UpdateProject)
		projectGroup.DELETE("/:id", r.projectHandler.DeleteProject)
		projectGroup.GET("/:id/qr", r.projectHandler.GetProjectQR)
		projectGroup.GET("/:id/units", r.unitHandler.ListProjectUnits)
	}

	// Amenity catalog
	api.GET("/amenities", r.projectHandler.ListAmenities)

	// Unit management, including the mass-edit bulk surface
	unitGroup := api.Group("/units")
	{
		unitGroup.POST("", r.unitHandler.CreateUnit)
		unitGroup.PATCH("/bulk", r.unitHandler.BulkUpdateUnits)
		unitGroup.DELETE("/bulk", r.unitHandler.BulkDeleteUnits)
		unitGroup.GET("/:id", r.unitHandler.GetUnit)
		unitGroup.PATCH("/:id", r.unitHandler.UpdateUnit)
		unitGroup.DELETE("/:id", r.unitHandler.DeleteUnit)
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"homio/internal/delivery/http/response"
	"homio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProjectHandlerParams holds dependencies for ProjectHandler, injected by Fx.
type ProjectHandlerParams struct {
	fx.In

	ProjectUC usecase.ProjectUsecase
	Logger    *slog.Logger
}

// ProjectHandler holds dependencies for project-related handlers
type ProjectHandler struct {
	projectUC usecase.ProjectUsecase
	logger    *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler
func NewProjectHandler(params ProjectHandlerParams) *ProjectHandler {
	return &ProjectHandler{
		projectUC: params.ProjectUC,
		logger:    params.Logger,
	}
}

// CreateProject handles creating a new project aggregate
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var input usecase.ProjectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	project, err := h.projectUC.CreateProject(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, project, "Project created successfully")
}

// GetProject handles retrieving a project by ID
func (h *ProjectHandler) GetProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid project ID")
	}

	project, err := h.projectUC.GetProject(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, project, "Project retrieved successfully")
}

// GetProjectBySlug handles retrieving a project by its URL slug
func (h *ProjectHandler) GetProjectBySlug(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return response.BadRequest(c, "INVALID_SLUG", "Missing project slug")
	}

	project, err := h.projectUC.GetProjectBySlug(c.Request().Context(), slug)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, project, "Project retrieved successfully")
}

// ListProjects handles retrieving a page of projects, newest first
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	result, err := h.projectUC.ListProjects(c.Request().Context(), c.QueryParam("page"), c.QueryParam("limit"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Projects retrieved successfully")
}

// UpdateProject handles replacing a project's fields, translations and amenities
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid project ID")
	}

	var input usecase.ProjectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	project, err := h.projectUC.UpdateProject(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, project, "Project updated successfully")
}

// DeleteProject handles removing a project and everything it owns
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid project ID")
	}

	if err := h.projectUC.DeleteProject(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Project deleted"}, "Project deleted successfully")
}

// GetProjectQR handles generating the share QR code for a project's public
// listing page, returned as a PNG image
func (h *ProjectHandler) GetProjectQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid project ID")
	}

	png, err := h.projectUC.GenerateShareQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListAmenities handles retrieving the amenity catalog
func (h *ProjectHandler) ListAmenities(c echo.Context) error {
	amenities, err := h.projectUC.ListAmenities(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, amenities, "Amenities retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

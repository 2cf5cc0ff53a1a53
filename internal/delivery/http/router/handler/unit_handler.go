package handler

import (
	"log/slog"
	"net/http"

	"homio/internal/delivery/http/response"
	"homio/internal/domain/entity"
	"homio/internal/domain/repository"
	"homio/internal/domain/search"
	"homio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UnitHandlerParams holds dependencies for UnitHandler, injected by Fx.
type UnitHandlerParams struct {
	fx.In

	UnitUC usecase.UnitUsecase
	Logger *slog.Logger
}

// UnitHandler holds dependencies for unit-related handlers
type UnitHandler struct {
	unitUC usecase.UnitUsecase
	logger *slog.Logger
}

// NewUnitHandler is the constructor for UnitHandler
func NewUnitHandler(params UnitHandlerParams) *UnitHandler {
	return &UnitHandler{
		unitUC: params.UnitUC,
		logger: params.Logger,
	}
}

// UnitPatchRequest is the sparse update payload: only present fields are
// applied.
type UnitPatchRequest struct {
	Status     *string    `json:"status" validate:"omitempty,oneof=AVAILABLE RESERVED SOLD"`
	Price      *float64   `json:"price" validate:"omitempty,min=0"`
	Floor      *int       `json:"floor"`
	Bedrooms   *int       `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms  *int       `json:"bathrooms" validate:"omitempty,min=0"`
	View       *string    `json:"view"`
	Features   *[]string  `json:"features"`
	BuildingID *uuid.UUID `json:"buildingId"`
	LayoutID   *uuid.UUID `json:"layoutId"`
}

// BulkUpdateRequest selects the units to patch and the patch itself.
type BulkUpdateRequest struct {
	UnitIDs    []uuid.UUID      `json:"unitIds" validate:"required,min=1"`
	UpdateData UnitPatchRequest `json:"updateData"`
}

// BulkDeleteRequest selects the units to delete.
type BulkDeleteRequest struct {
	UnitIDs []uuid.UUID `json:"unitIds" validate:"required,min=1"`
}

func (r UnitPatchRequest) toPatch() repository.UnitPatch {
	patch := repository.UnitPatch{
		Price:      r.Price,
		Floor:      r.Floor,
		Bedrooms:   r.Bedrooms,
		Bathrooms:  r.Bathrooms,
		View:       r.View,
		Features:   r.Features,
		BuildingID: r.BuildingID,
		LayoutID:   r.LayoutID,
	}
	if r.Status != nil {
		status := entity.UnitStatus(*r.Status)
		patch.Status = &status
	}

	return patch
}

// CreateUnit handles creating a new unit under an existing project
func (h *UnitHandler) CreateUnit(c echo.Context) error {
	var input usecase.UnitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unit input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	unit, err := h.unitUC.CreateUnit(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, unit, "Unit created successfully")
}

// GetUnit handles retrieving a unit by ID
func (h *UnitHandler) GetUnit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid unit ID")
	}

	unit, err := h.unitUC.GetUnit(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, unit, "Unit retrieved successfully")
}

// ListProjectUnits handles retrieving a project's units, optionally narrowed
// by the mass-edit filter dimensions
func (h *UnitHandler) ListProjectUnits(c echo.Context) error {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid project ID")
	}

	filters := search.FilterSet{
		Status:     c.QueryParam("status"),
		BuildingID: c.QueryParam("buildingId"),
		Floor:      c.QueryParam("floor"),
		LayoutID:   c.QueryParam("layoutId"),
		UnitQuery:  c.QueryParam("q"),
	}

	units, err := h.unitUC.ListProjectUnits(c.Request().Context(), projectID, filters)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, units, "Units retrieved successfully")
}

// UpdateUnit handles applying a sparse patch to one unit
func (h *UnitHandler) UpdateUnit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid unit ID")
	}

	var req UnitPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unit patch")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	unit, err := h.unitUC.UpdateUnit(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, unit, "Unit updated successfully")
}

// DeleteUnit handles removing one unit
func (h *UnitHandler) DeleteUnit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid unit ID")
	}

	if err := h.unitUC.DeleteUnit(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Unit deleted"}, "Unit deleted successfully")
}

// BulkUpdateUnits handles the mass-edit bulk update. Every selected unit is
// attempted and the outcome counts are returned; partial failure is not an
// error.
func (h *UnitHandler) BulkUpdateUnits(c echo.Context) error {
	var req BulkUpdateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.unitUC.BulkUpdateUnits(c.Request().Context(), req.UnitIDs, req.UpdateData.toPatch())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Bulk update completed")
}

// BulkDeleteUnits handles deleting every selected unit with the same
// settle-all semantics as the bulk update
func (h *UnitHandler) BulkDeleteUnits(c echo.Context) error {
	var req BulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk delete input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.unitUC.BulkDeleteUnits(c.Request().Context(), req.UnitIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Bulk delete completed")
}

package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpvalidator "homio/internal/delivery/http/validator"
	"homio/internal/domain/entity"
	"homio/internal/domain/repository"
	mockUC "homio/internal/mocks/usecase"
	"homio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUnitHandler(t *testing.T) (*UnitHandler, *mockUC.MockUnitUsecase) {
	t.Helper()

	unitUC := mockUC.NewMockUnitUsecase(t)
	handler := NewUnitHandler(UnitHandlerParams{
		UnitUC: unitUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return handler, unitUC
}

func newJSONContext(method, target, payload string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = httpvalidator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUnitHandler_BulkUpdateUnits(t *testing.T) {
	handler, unitUC := newUnitHandler(t)

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	unitUC.EXPECT().
		BulkUpdateUnits(mock.Anything, ids, mock.AnythingOfType("repository.UnitPatch")).
		Return(&usecase.BulkResult{Successful: 3, Failed: 0}, nil)

	payload := fmt.Sprintf(`{"unitIds":["%s","%s","%s"],"updateData":{"status":"RESERVED"}}`,
		ids[0], ids[1], ids[2])
	c, rec := newJSONContext(http.MethodPatch, "/api/units/bulk", payload)

	require.NoError(t, handler.BulkUpdateUnits(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnitHandler_BulkUpdateUnits_InvalidStatus(t *testing.T) {
	handler, _ := newUnitHandler(t)

	payload := fmt.Sprintf(`{"unitIds":["%s"],"updateData":{"status":"PENDING"}}`, uuid.New())
	c, rec := newJSONContext(http.MethodPatch, "/api/units/bulk", payload)

	require.NoError(t, handler.BulkUpdateUnits(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnitHandler_BulkUpdateUnits_EmptySelection(t *testing.T) {
	handler, _ := newUnitHandler(t)

	c, rec := newJSONContext(http.MethodPatch, "/api/units/bulk", `{"unitIds":[],"updateData":{"status":"SOLD"}}`)

	require.NoError(t, handler.BulkUpdateUnits(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnitHandler_BulkDeleteUnits(t *testing.T) {
	handler, unitUC := newUnitHandler(t)

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	unitUC.EXPECT().
		BulkDeleteUnits(mock.Anything, ids).
		Return(&usecase.BulkResult{Successful: 1, Failed: 1}, nil)

	payload := fmt.Sprintf(`{"unitIds":["%s","%s"]}`, ids[0], ids[1])
	c, rec := newJSONContext(http.MethodDelete, "/api/units/bulk", payload)

	require.NoError(t, handler.BulkDeleteUnits(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"successful":1`)
	assert.Contains(t, body, `"failed":1`)
}

func TestUnitHandler_UpdateUnit_MapsPatchFields(t *testing.T) {
	handler, unitUC := newUnitHandler(t)
	unitID := uuid.New()

	var captured repository.UnitPatch
	unitUC.EXPECT().
		UpdateUnit(mock.Anything, unitID, mock.AnythingOfType("repository.UnitPatch")).
		Run(func(_ context.Context, _ uuid.UUID, patch repository.UnitPatch) {
			captured = patch
		}).
		Return(&entity.Unit{ID: unitID}, nil)

	c, rec := newJSONContext(http.MethodPatch, "/api/units/"+unitID.String(),
		`{"status":"SOLD","price":310000,"features":["sea_view"]}`)
	c.SetParamNames("id")
	c.SetParamValues(unitID.String())

	require.NoError(t, handler.UpdateUnit(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, captured.Status)
	assert.Equal(t, entity.UnitStatusSold, *captured.Status)
	require.NotNil(t, captured.Price)
	assert.Equal(t, 310000.0, *captured.Price)
	require.NotNil(t, captured.Features)
	assert.Equal(t, []string{"sea_view"}, *captured.Features)
	assert.Nil(t, captured.Floor)
}

func TestUnitHandler_GetUnit_BadID(t *testing.T) {
	handler, _ := newUnitHandler(t)

	c, rec := newJSONContext(http.MethodGet, "/api/units/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.GetUnit(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitstop/internal/application/warranty/dto"
	"pitstop/internal/shared/errors"
	"pitstop/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockActivateWarrantyUC struct {
	result []dto.AssignmentResponse
	err    error
}

func (m *mockActivateWarrantyUC) Execute(ctx context.Context, vehicleID uint, request dto.ActivateWarrantyRequest) ([]dto.AssignmentResponse, error) {
	return m.result, m.err
}

type mockGetWarrantyStatusUC struct {
	result *dto.VehicleWarrantyReportResponse
	err    error
}

func (m *mockGetWarrantyStatusUC) Execute(ctx context.Context, vehicleID uint) (*dto.VehicleWarrantyReportResponse, error) {
	return m.result, m.err
}

type mockListComponentsUC struct {
	result []dto.ComponentResponse
	err    error
}

func (m *mockListComponentsUC) Execute(ctx context.Context) ([]dto.ComponentResponse, error) {
	return m.result, m.err
}

// =====================================================================
// Helpers
// =====================================================================

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

func setupWarrantyRouter(h *WarrantyHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/vehicles/:id/warranty/activations", h.ActivateWarranty)
	router.GET("/api/v1/vehicles/:id/warranty", h.GetWarrantyStatus)
	router.GET("/api/v1/warranty/components", h.ListComponents)
	return router
}

// =====================================================================
// ActivateWarranty
// =====================================================================

func TestWarrantyHandler_ActivateWarranty_Success(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	activateUC := &mockActivateWarrantyUC{
		result: []dto.AssignmentResponse{
			{
				ID:            1,
				VehicleID:     7,
				ComponentID:   1,
				ComponentName: "Engine",
				StartDate:     start,
				WarrantyYears: 10,
				WarrantyKM:    200000,
				BaselineKM:    1500,
				Source:        "model_default",
			},
		},
	}

	h := NewWarrantyHandler(activateUC, &mockGetWarrantyStatusUC{}, &mockListComponentsUC{}, testLogger())
	router := setupWarrantyRouter(h)

	body, _ := json.Marshal(dto.ActivateWarrantyRequest{
		ActivationDate: "2024-06-01",
		CurrentKM:      1500,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/7/warranty/activations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Assignments []dto.AssignmentResponse `json:"assignments"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	require.Len(t, response.Data.Assignments, 1)
	assert.Equal(t, "Engine", response.Data.Assignments[0].ComponentName)
}

func TestWarrantyHandler_ActivateWarranty_InvalidVehicleID(t *testing.T) {
	h := NewWarrantyHandler(&mockActivateWarrantyUC{}, &mockGetWarrantyStatusUC{}, &mockListComponentsUC{}, testLogger())
	router := setupWarrantyRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/abc/warranty/activations", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWarrantyHandler_ActivateWarranty_InvalidBody(t *testing.T) {
	h := NewWarrantyHandler(&mockActivateWarrantyUC{}, &mockGetWarrantyStatusUC{}, &mockListComponentsUC{}, testLogger())
	router := setupWarrantyRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/7/warranty/activations", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWarrantyHandler_ActivateWarranty_ValidationError(t *testing.T) {
	activateUC := &mockActivateWarrantyUC{
		err: errors.NewValidationError("activation date cannot be in the future"),
	}
	h := NewWarrantyHandler(activateUC, &mockGetWarrantyStatusUC{}, &mockListComponentsUC{}, testLogger())
	router := setupWarrantyRouter(h)

	body, _ := json.Marshal(dto.ActivateWarrantyRequest{ActivationDate: "2099-01-01"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/7/warranty/activations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "future")
}

// =====================================================================
// GetWarrantyStatus
// =====================================================================

func TestWarrantyHandler_GetWarrantyStatus_Success(t *testing.T) {
	statusUC := &mockGetWarrantyStatusUC{
		result: &dto.VehicleWarrantyReportResponse{
			Vehicle: dto.VehicleInfoResponse{ID: 7, ModelID: 3, CurrentKM: 120000},
			Components: []dto.ComponentStatusResponse{
				{ComponentID: 1, ComponentName: "Engine", Status: "active", ProgressPercentage: 60},
				{ComponentID: 3, ComponentName: "Battery", Status: "not_applicable"},
			},
		},
	}
	h := NewWarrantyHandler(&mockActivateWarrantyUC{}, statusUC, &mockListComponentsUC{}, testLogger())
	router := setupWarrantyRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/7/warranty", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool                              `json:"success"`
		Data    dto.VehicleWarrantyReportResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, uint(7), response.Data.Vehicle.ID)
	require.Len(t, response.Data.Components, 2)
	assert.Equal(t, "active", response.Data.Components[0].Status)
	assert.Nil(t, response.Data.Components[1].ExpiryDate)
}

func TestWarrantyHandler_GetWarrantyStatus_NotFound(t *testing.T) {
	statusUC := &mockGetWarrantyStatusUC{err: errors.NewNotFoundError("vehicle not found")}
	h := NewWarrantyHandler(&mockActivateWarrantyUC{}, statusUC, &mockListComponentsUC{}, testLogger())
	router := setupWarrantyRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/42/warranty", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWarrantyHandler_GetWarrantyStatus_IntegrityError(t *testing.T) {
	statusUC := &mockGetWarrantyStatusUC{err: errors.NewIntegrityError("coverage assignment 10 is corrupted")}
	h := NewWarrantyHandler(&mockActivateWarrantyUC{}, statusUC, &mockListComponentsUC{}, testLogger())
	router := setupWarrantyRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/7/warranty", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "integrity_error")
}

// =====================================================================
// ListComponents
// =====================================================================

func TestWarrantyHandler_ListComponents_Success(t *testing.T) {
	listUC := &mockListComponentsUC{
		result: []dto.ComponentResponse{
			{ID: 1, Name: "Engine", Category: "engine"},
			{ID: 2, Name: "Paint", Category: "paint"},
		},
	}
	h := NewWarrantyHandler(&mockActivateWarrantyUC{}, &mockGetWarrantyStatusUC{}, listUC, testLogger())
	router := setupWarrantyRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/warranty/components", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Engine")
	assert.Contains(t, w.Body.String(), "Paint")
}

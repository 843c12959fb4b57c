package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitstop/internal/application/warranty/dto"
	"pitstop/internal/shared/errors"
)

type mockGetVehicleUC struct {
	result *dto.VehicleInfoResponse
	err    error
}

func (m *mockGetVehicleUC) Execute(ctx context.Context, vehicleID uint) (*dto.VehicleInfoResponse, error) {
	return m.result, m.err
}

func setupVehicleRouter(h *VehicleHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/vehicles/:id", h.GetVehicle)
	return router
}

func TestVehicleHandler_GetVehicle_Success(t *testing.T) {
	uc := &mockGetVehicleUC{
		result: &dto.VehicleInfoResponse{ID: 7, ModelID: 3, VIN: "WVWZZZ1JZXW000001", CurrentKM: 42000},
	}
	h := NewVehicleHandler(uc, testLogger())
	router := setupVehicleRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool                    `json:"success"`
		Data    dto.VehicleInfoResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, uint(7), response.Data.ID)
	assert.Equal(t, int64(42000), response.Data.CurrentKM)
}

func TestVehicleHandler_GetVehicle_NotFound(t *testing.T) {
	uc := &mockGetVehicleUC{err: errors.NewNotFoundError("vehicle not found")}
	h := NewVehicleHandler(uc, testLogger())
	router := setupVehicleRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVehicleHandler_GetVehicle_InvalidID(t *testing.T) {
	h := NewVehicleHandler(&mockGetVehicleUC{}, testLogger())
	router := setupVehicleRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/zero", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

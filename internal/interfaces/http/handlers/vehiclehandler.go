package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"pitstop/internal/application/warranty/dto"
	"pitstop/internal/shared/logger"
	"pitstop/internal/shared/utils"
)

type getVehicleUseCase interface {
	Execute(ctx context.Context, vehicleID uint) (*dto.VehicleInfoResponse, error)
}

// VehicleHandler handles vehicle HTTP requests
type VehicleHandler struct {
	getVehicle getVehicleUseCase
	logger     logger.Interface
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(getVehicle getVehicleUseCase, logger logger.Interface) *VehicleHandler {
	return &VehicleHandler{
		getVehicle: getVehicle,
		logger:     logger,
	}
}

// GetVehicle handles GET /api/v1/vehicles/:id
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicleID, err := utils.ParseUintParam(c, "id", "vehicle")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	info, err := h.getVehicle.Execute(c.Request.Context(), vehicleID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", info)
}

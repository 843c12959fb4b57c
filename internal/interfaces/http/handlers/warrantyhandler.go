// Package handlers provides the Gin HTTP handlers of the warranty API.
package handlers

import (
	"github.com/gin-gonic/gin"

	"pitstop/internal/application/warranty/dto"
	"pitstop/internal/shared/errors"
	"pitstop/internal/shared/logger"
	"pitstop/internal/shared/utils"
)

// WarrantyHandler handles warranty HTTP requests
type WarrantyHandler struct {
	activateWarranty  activateWarrantyUseCase
	getWarrantyStatus getVehicleWarrantyStatusUseCase
	listComponents    listComponentsUseCase
	logger            logger.Interface
}

// NewWarrantyHandler creates a new warranty handler
func NewWarrantyHandler(
	activateWarranty activateWarrantyUseCase,
	getWarrantyStatus getVehicleWarrantyStatusUseCase,
	listComponents listComponentsUseCase,
	logger logger.Interface,
) *WarrantyHandler {
	return &WarrantyHandler{
		activateWarranty:  activateWarranty,
		getWarrantyStatus: getWarrantyStatus,
		listComponents:    listComponents,
		logger:            logger,
	}
}

// ActivateWarranty handles POST /api/v1/vehicles/:id/warranty/activations
func (h *WarrantyHandler) ActivateWarranty(c *gin.Context) {
	vehicleID, err := utils.ParseUintParam(c, "id", "vehicle")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var request dto.ActivateWarrantyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warnw("invalid activate warranty request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	assignments, err := h.activateWarranty.Execute(c.Request.Context(), vehicleID, request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"assignments": assignments}, "Warranty activated successfully")
}

// GetWarrantyStatus handles GET /api/v1/vehicles/:id/warranty
func (h *WarrantyHandler) GetWarrantyStatus(c *gin.Context) {
	vehicleID, err := utils.ParseUintParam(c, "id", "vehicle")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	report, err := h.getWarrantyStatus.Execute(c.Request.Context(), vehicleID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", report)
}

// ListComponents handles GET /api/v1/warranty/components
func (h *WarrantyHandler) ListComponents(c *gin.Context) {
	components, err := h.listComponents.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", gin.H{"components": components})
}

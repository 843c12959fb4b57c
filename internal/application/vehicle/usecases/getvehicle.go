package usecases

import (
	"context"
	"errors"
	"fmt"

	"pitstop/internal/application/warranty/dto"
	"pitstop/internal/domain/vehicle"
	apperrors "pitstop/internal/shared/errors"
	"pitstop/internal/shared/logger"
)

// GetVehicleUseCase handles retrieving a vehicle summary
type GetVehicleUseCase struct {
	vehicleRepo vehicle.Repository
	logger      logger.Interface
}

// NewGetVehicleUseCase creates a new get vehicle use case
func NewGetVehicleUseCase(vehicleRepo vehicle.Repository, logger logger.Interface) *GetVehicleUseCase {
	return &GetVehicleUseCase{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// Execute executes the get vehicle use case
func (uc *GetVehicleUseCase) Execute(ctx context.Context, vehicleID uint) (*dto.VehicleInfoResponse, error) {
	veh, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, vehicle.ErrVehicleNotFound) {
			uc.logger.Warnw("vehicle not found", "vehicle_id", vehicleID)
			return nil, apperrors.NewNotFoundError("vehicle not found")
		}
		uc.logger.Errorw("failed to load vehicle", "error", err, "vehicle_id", vehicleID)
		return nil, fmt.Errorf("failed to load vehicle: %w", err)
	}

	return &dto.VehicleInfoResponse{
		ID:          veh.ID(),
		ModelID:     veh.ModelID(),
		VIN:         veh.VIN(),
		PlateNumber: veh.PlateNumber(),
		CurrentKM:   veh.CurrentKM(),
	}, nil
}

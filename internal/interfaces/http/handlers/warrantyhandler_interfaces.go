package handlers

import (
	"context"

	"pitstop/internal/application/warranty/dto"
)

// Use case interfaces for WarrantyHandler - enables unit testing with mocks.

type activateWarrantyUseCase interface {
	Execute(ctx context.Context, vehicleID uint, request dto.ActivateWarrantyRequest) ([]dto.AssignmentResponse, error)
}

type getVehicleWarrantyStatusUseCase interface {
	Execute(ctx context.Context, vehicleID uint) (*dto.VehicleWarrantyReportResponse, error)
}

type listComponentsUseCase interface {
	Execute(ctx context.Context) ([]dto.ComponentResponse, error)
}

package usecases

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"pitstop/internal/application/warranty/dto"
	"pitstop/internal/domain/vehicle"
	"pitstop/internal/domain/warranty"
	"pitstop/internal/shared/biztime"
	apperrors "pitstop/internal/shared/errors"
	"pitstop/internal/shared/logger"
)

// GetVehicleWarrantyStatusUseCase produces the aggregated warranty report for
// one vehicle: every catalog component evaluated against the vehicle's active
// assignments and its current odometer reading. Statuses are derived on every
// call, never cached or persisted.
type GetVehicleWarrantyStatusUseCase struct {
	vehicleRepo    vehicle.Repository
	catalogRepo    warranty.CatalogRepository
	assignmentRepo warranty.AssignmentRepository
	evaluator      *warranty.StatusEvaluator
	logger         logger.Interface
}

// NewGetVehicleWarrantyStatusUseCase creates a new get vehicle warranty status use case
func NewGetVehicleWarrantyStatusUseCase(
	vehicleRepo vehicle.Repository,
	catalogRepo warranty.CatalogRepository,
	assignmentRepo warranty.AssignmentRepository,
	evaluator *warranty.StatusEvaluator,
	logger logger.Interface,
) *GetVehicleWarrantyStatusUseCase {
	return &GetVehicleWarrantyStatusUseCase{
		vehicleRepo:    vehicleRepo,
		catalogRepo:    catalogRepo,
		assignmentRepo: assignmentRepo,
		evaluator:      evaluator,
		logger:         logger,
	}
}

// Execute executes the get vehicle warranty status use case
func (uc *GetVehicleWarrantyStatusUseCase) Execute(
	ctx context.Context,
	vehicleID uint,
) (*dto.VehicleWarrantyReportResponse, error) {
	veh, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, vehicle.ErrVehicleNotFound) {
			uc.logger.Warnw("vehicle not found on warranty status query", "vehicle_id", vehicleID)
			return nil, apperrors.NewNotFoundError("vehicle not found")
		}
		uc.logger.Errorw("failed to load vehicle", "error", err, "vehicle_id", vehicleID)
		return nil, fmt.Errorf("failed to load vehicle: %w", err)
	}

	catalog, err := uc.catalogRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load component catalog", "error", err)
		return nil, fmt.Errorf("failed to load component catalog: %w", err)
	}

	assignments, err := uc.assignmentRepo.ListActiveByVehicle(ctx, vehicleID)
	if err != nil {
		uc.logger.Errorw("failed to load coverage assignments", "error", err, "vehicle_id", vehicleID)
		return nil, fmt.Errorf("failed to load coverage assignments: %w", err)
	}

	byComponent := make(map[uint]*warranty.CoverageAssignment, len(assignments))
	for _, a := range assignments {
		byComponent[a.ComponentID()] = a
	}

	now := biztime.NowUTC()
	currentKM := veh.CurrentKM()

	components := make([]dto.ComponentStatusResponse, 0, len(catalog))
	for _, c := range catalog {
		assignment, covered := byComponent[c.ID()]
		if !covered {
			status := warranty.NotApplicableStatus(c.ID())
			components = append(components, toStatusResponse(c, status, false))
			continue
		}

		status, err := uc.evaluator.Evaluate(assignment, now, currentKM)
		if err != nil {
			uc.logger.Errorw("corrupted coverage assignment",
				"error", err,
				"vehicle_id", vehicleID,
				"component_id", c.ID(),
				"assignment_id", assignment.ID(),
			)
			return nil, apperrors.NewIntegrityError(
				fmt.Sprintf("coverage assignment %d is corrupted", assignment.ID()))
		}
		components = append(components, toStatusResponse(c, status, true))
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i].ComponentID < components[j].ComponentID
	})

	uc.logger.Infow("warranty status evaluated",
		"vehicle_id", vehicleID,
		"component_count", len(components),
		"assignment_count", len(assignments),
	)

	return &dto.VehicleWarrantyReportResponse{
		Vehicle: dto.VehicleInfoResponse{
			ID:          veh.ID(),
			ModelID:     veh.ModelID(),
			VIN:         veh.VIN(),
			PlateNumber: veh.PlateNumber(),
			CurrentKM:   veh.CurrentKM(),
		},
		Components: components,
	}, nil
}

func toStatusResponse(component *warranty.CoverageComponent, status *warranty.ComponentStatus, covered bool) dto.ComponentStatusResponse {
	response := dto.ComponentStatusResponse{
		ComponentID:        status.ComponentID,
		ComponentName:      component.Name(),
		Category:           component.Category().String(),
		Status:             status.Status.String(),
		RemainingYears:     status.RemainingYears,
		RemainingKM:        status.RemainingKM,
		ProgressPercentage: status.ProgressPercentage,
		IsExpired:          status.IsExpired,
	}
	if covered {
		expiry := status.ExpiryDate
		response.ExpiryDate = &expiry
	}
	return response
}

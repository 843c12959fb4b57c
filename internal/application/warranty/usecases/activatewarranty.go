package usecases

import (
	"context"
	"errors"
	"fmt"

	"pitstop/internal/application/warranty/dto"
	"pitstop/internal/domain/vehicle"
	"pitstop/internal/domain/warranty"
	"pitstop/internal/shared/biztime"
	"pitstop/internal/shared/db"
	apperrors "pitstop/internal/shared/errors"
	"pitstop/internal/shared/logger"
	"pitstop/internal/shared/utils"
)

// ActivateWarrantyUseCase handles warranty activation for a vehicle. It
// resolves the assignment set from model defaults and caller overrides and
// persists it atomically: validation failure on any component means no rows
// are written at all.
type ActivateWarrantyUseCase struct {
	vehicleRepo    vehicle.Repository
	catalogRepo    warranty.CatalogRepository
	defaultsRepo   warranty.DefaultsRepository
	assignmentRepo warranty.AssignmentRepository
	resolver       *warranty.AssignmentResolver
	txManager      *db.TransactionManager
	logger         logger.Interface
}

// NewActivateWarrantyUseCase creates a new activate warranty use case
func NewActivateWarrantyUseCase(
	vehicleRepo vehicle.Repository,
	catalogRepo warranty.CatalogRepository,
	defaultsRepo warranty.DefaultsRepository,
	assignmentRepo warranty.AssignmentRepository,
	resolver *warranty.AssignmentResolver,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *ActivateWarrantyUseCase {
	return &ActivateWarrantyUseCase{
		vehicleRepo:    vehicleRepo,
		catalogRepo:    catalogRepo,
		defaultsRepo:   defaultsRepo,
		assignmentRepo: assignmentRepo,
		resolver:       resolver,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute executes the activate warranty use case
func (uc *ActivateWarrantyUseCase) Execute(
	ctx context.Context,
	vehicleID uint,
	request dto.ActivateWarrantyRequest,
) ([]dto.AssignmentResponse, error) {
	uc.logger.Infow("executing activate warranty use case",
		"vehicle_id", vehicleID,
		"activation_date", request.ActivationDate,
		"current_km", request.CurrentKM,
		"override_count", len(request.Overrides),
	)

	if err := utils.ValidateStruct(request); err != nil {
		uc.logger.Warnw("invalid activate warranty request", "error", err, "vehicle_id", vehicleID)
		return nil, err
	}

	activationDate, err := biztime.ParseDateInBizTimezone(request.ActivationDate)
	if err != nil {
		uc.logger.Warnw("invalid activation date", "error", err, "activation_date", request.ActivationDate)
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("invalid activation date: %s (expected YYYY-MM-DD)", request.ActivationDate))
	}
	if activationDate.After(biztime.NowUTC()) {
		uc.logger.Warnw("activation date in the future", "activation_date", request.ActivationDate)
		return nil, apperrors.NewValidationError("activation date cannot be in the future")
	}

	overrides, err := buildOverrideMap(request.Overrides)
	if err != nil {
		uc.logger.Warnw("invalid override set", "error", err, "vehicle_id", vehicleID)
		return nil, err
	}

	veh, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, vehicle.ErrVehicleNotFound) {
			uc.logger.Warnw("unknown vehicle on warranty activation", "vehicle_id", vehicleID)
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown vehicle: %d", vehicleID))
		}
		uc.logger.Errorw("failed to load vehicle", "error", err, "vehicle_id", vehicleID)
		return nil, fmt.Errorf("failed to load vehicle: %w", err)
	}

	catalog, err := uc.catalogRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load component catalog", "error", err)
		return nil, fmt.Errorf("failed to load component catalog: %w", err)
	}

	defaults, err := uc.defaultsRepo.GetByModel(ctx, veh.ModelID())
	if err != nil {
		uc.logger.Errorw("failed to load model coverage defaults",
			"error", err, "model_id", veh.ModelID())
		return nil, fmt.Errorf("failed to load model coverage defaults: %w", err)
	}
	if len(defaults) == 0 {
		uc.logger.Infow("model has no configured coverage defaults, using baseline matrix",
			"model_id", veh.ModelID())
	}

	assignments, err := uc.resolver.Resolve(
		vehicleID, activationDate, request.CurrentKM, catalog, defaults, overrides)
	if err != nil {
		uc.logger.Warnw("warranty resolution failed", "error", err, "vehicle_id", vehicleID)
		return nil, mapResolutionError(err)
	}

	annotateProvenance(assignments, veh.ModelID(), len(defaults) == 0, overrides)

	if err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.assignmentRepo.ReplaceForVehicle(txCtx, vehicleID, assignments)
	}); err != nil {
		uc.logger.Errorw("failed to persist coverage assignments",
			"error", err, "vehicle_id", vehicleID, "count", len(assignments))
		return nil, fmt.Errorf("failed to persist coverage assignments: %w", err)
	}

	names := componentNames(catalog)
	responses := make([]dto.AssignmentResponse, len(assignments))
	for i, a := range assignments {
		responses[i] = dto.AssignmentResponse{
			ID:            a.ID(),
			VehicleID:     a.VehicleID(),
			ComponentID:   a.ComponentID(),
			ComponentName: names[a.ComponentID()],
			StartDate:     a.StartDate(),
			WarrantyYears: a.WarrantyYears(),
			WarrantyKM:    a.WarrantyKM(),
			BaselineKM:    a.BaselineKM(),
			Source:        a.Source().String(),
			CreatedAt:     a.CreatedAt(),
		}
	}

	uc.logger.Infow("warranty activated",
		"vehicle_id", vehicleID,
		"model_id", veh.ModelID(),
		"assignment_count", len(responses),
	)

	return responses, nil
}

// buildOverrideMap converts the sparse override list into the resolver's map
// form, rejecting duplicate component ids.
func buildOverrideMap(overrides []dto.ComponentOverrideRequest) (map[uint]warranty.Override, error) {
	result := make(map[uint]warranty.Override, len(overrides))
	for _, o := range overrides {
		if _, exists := result[o.ComponentID]; exists {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("duplicate override for component %d", o.ComponentID))
		}
		result[o.ComponentID] = warranty.Override{
			Selected:   o.Selected,
			Years:      o.Years,
			Kilometers: o.Kilometers,
		}
	}
	return result, nil
}

// annotateProvenance records on each assignment how its terms were arrived
// at: the model the defaults were resolved for, whether the baseline matrix
// stood in for a model with no configured rows, and which override fields
// the caller supplied explicitly rather than inherited. The columns carry
// the effective terms; the metadata keeps the resolution context queryable
// after the fact.
func annotateProvenance(
	assignments []*warranty.CoverageAssignment,
	modelID uint,
	baselineUsed bool,
	overrides map[uint]warranty.Override,
) {
	for _, a := range assignments {
		a.SetMetadata("model_id", modelID)
		if baselineUsed {
			a.SetMetadata("baseline_matrix", true)
		}
		if o, ok := overrides[a.ComponentID()]; ok && a.Source() == warranty.SourceOverride {
			a.SetMetadata("override_years_supplied", o.Years != nil)
			a.SetMetadata("override_km_supplied", o.Kilometers != nil)
		}
	}
}

// mapResolutionError translates domain resolution failures into the
// application error taxonomy.
func mapResolutionError(err error) error {
	switch {
	case errors.Is(err, warranty.ErrUnknownOverrideComponent),
		errors.Is(err, warranty.ErrOverrideYearsOutOfRange),
		errors.Is(err, warranty.ErrOverrideKilometersNegative),
		errors.Is(err, warranty.ErrOverrideTermsRequired),
		errors.Is(err, warranty.ErrStartDateInFuture):
		return apperrors.NewValidationError(err.Error())
	default:
		return fmt.Errorf("warranty resolution failed: %w", err)
	}
}

func componentNames(catalog []*warranty.CoverageComponent) map[uint]string {
	names := make(map[uint]string, len(catalog))
	for _, c := range catalog {
		names[c.ID()] = c.Name()
	}
	return names
}

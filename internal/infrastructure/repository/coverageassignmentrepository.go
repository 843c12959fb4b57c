package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pitstop/internal/domain/warranty"
	"pitstop/internal/infrastructure/persistence/models"
	"pitstop/internal/shared/db"
)

type coverageAssignmentRepository struct {
	db *gorm.DB
}

// NewCoverageAssignmentRepository creates a new coverage assignment repository
func NewCoverageAssignmentRepository(database *gorm.DB) warranty.AssignmentRepository {
	return &coverageAssignmentRepository{db: database}
}

// ReplaceForVehicle supersedes the vehicle's active assignments and inserts
// the new set. Callers must wrap this in a transaction via the transaction
// manager; a partial write would leave the vehicle reporting phantom
// not_applicable statuses.
func (r *coverageAssignmentRepository) ReplaceForVehicle(ctx context.Context, vehicleID uint, assignments []*warranty.CoverageAssignment) error {
	conn := db.GetTxFromContext(ctx, r.db)
	now := time.Now().UTC()

	if err := conn.Model(&models.CoverageAssignmentModel{}).
		Where("vehicle_id = ? AND superseded_at IS NULL", vehicleID).
		Update("superseded_at", now).Error; err != nil {
		return fmt.Errorf("failed to supersede assignments for vehicle %d: %w", vehicleID, err)
	}

	for _, assignment := range assignments {
		record, err := toAssignmentModel(assignment)
		if err != nil {
			return fmt.Errorf("failed to map assignment for component %d: %w", assignment.ComponentID(), err)
		}
		if err := conn.Create(record).Error; err != nil {
			return fmt.Errorf("failed to insert assignment for component %d: %w", assignment.ComponentID(), err)
		}
		if err := assignment.SetID(record.ID); err != nil {
			return fmt.Errorf("failed to set assignment ID: %w", err)
		}
	}
	return nil
}

func (r *coverageAssignmentRepository) ListActiveByVehicle(ctx context.Context, vehicleID uint) ([]*warranty.CoverageAssignment, error) {
	conn := db.GetTxFromContext(ctx, r.db)

	var records []models.CoverageAssignmentModel
	if err := conn.Where("vehicle_id = ? AND superseded_at IS NULL", vehicleID).
		Order("component_id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments for vehicle %d: %w", vehicleID, err)
	}

	assignments := make([]*warranty.CoverageAssignment, 0, len(records))
	for _, record := range records {
		assignment, err := toDomainAssignment(&record)
		if err != nil {
			return nil, fmt.Errorf("failed to map assignment %d: %w", record.ID, err)
		}
		assignments = append(assignments, assignment)
	}
	return assignments, nil
}

func toAssignmentModel(assignment *warranty.CoverageAssignment) (*models.CoverageAssignmentModel, error) {
	var metadata datatypes.JSON
	if len(assignment.Metadata()) > 0 {
		raw, err := json.Marshal(assignment.Metadata())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal assignment metadata: %w", err)
		}
		metadata = raw
	}

	return &models.CoverageAssignmentModel{
		ID:            assignment.ID(),
		VehicleID:     assignment.VehicleID(),
		ComponentID:   assignment.ComponentID(),
		StartDate:     assignment.StartDate(),
		WarrantyYears: assignment.WarrantyYears(),
		WarrantyKM:    assignment.WarrantyKM(),
		BaselineKM:    assignment.BaselineKM(),
		Source:        assignment.Source().String(),
		Metadata:      metadata,
		SupersededAt:  assignment.SupersededAt(),
		CreatedAt:     assignment.CreatedAt(),
	}, nil
}

func toDomainAssignment(record *models.CoverageAssignmentModel) (*warranty.CoverageAssignment, error) {
	var metadata map[string]any
	if len(record.Metadata) > 0 {
		if err := json.Unmarshal(record.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assignment metadata: %w", err)
		}
	}

	return warranty.ReconstructCoverageAssignment(
		record.ID,
		record.VehicleID,
		record.ComponentID,
		record.StartDate,
		record.WarrantyYears,
		record.WarrantyKM,
		record.BaselineKM,
		warranty.AssignmentSource(record.Source),
		metadata,
		record.SupersededAt,
		record.CreatedAt,
	)
}

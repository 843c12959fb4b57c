package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pitstop/internal/domain/vehicle"
	"pitstop/internal/infrastructure/persistence/models"
	"pitstop/internal/shared/db"
)

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(database *gorm.DB) vehicle.Repository {
	return &vehicleRepository{db: database}
}

func (r *vehicleRepository) GetByID(ctx context.Context, id uint) (*vehicle.Vehicle, error) {
	conn := db.GetTxFromContext(ctx, r.db)

	var record models.VehicleModel
	if err := conn.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vehicle.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to load vehicle %d: %w", id, err)
	}

	return vehicle.ReconstructVehicle(
		record.ID,
		record.ModelID,
		record.VIN,
		record.PlateNumber,
		record.CurrentKM,
	)
}

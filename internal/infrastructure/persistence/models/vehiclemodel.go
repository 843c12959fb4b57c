package models

import (
	"time"

	"pitstop/internal/shared/constants"
)

// VehicleModel represents the database persistence model for vehicles
// This is the anti-corruption layer between domain and database
type VehicleModel struct {
	ID          uint   `gorm:"primarykey"`
	ModelID     uint   `gorm:"not null;index"`
	VIN         string `gorm:"uniqueIndex;size:17"`
	PlateNumber string `gorm:"size:20"`
	CurrentKM   int64  `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (VehicleModel) TableName() string {
	return constants.TableVehicles
}

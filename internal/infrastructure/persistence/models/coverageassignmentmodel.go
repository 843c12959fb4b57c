package models

import (
	"time"

	"gorm.io/datatypes"

	"pitstop/internal/shared/constants"
)

// CoverageAssignmentModel represents the database persistence model for
// per-vehicle coverage assignments. Rows are never deleted: re-activation
// stamps SupersededAt on the old rows and inserts fresh ones, so the full
// activation history stays queryable.
type CoverageAssignmentModel struct {
	ID            uint      `gorm:"primarykey"`
	VehicleID     uint      `gorm:"not null;index:idx_vehicle_active"`
	ComponentID   uint      `gorm:"not null;index"`
	StartDate     time.Time `gorm:"not null"`
	WarrantyYears float64   `gorm:"not null"`
	WarrantyKM    int64     `gorm:"not null"`
	BaselineKM    int64     `gorm:"not null"`
	Source        string    `gorm:"not null;size:20"`
	Metadata      datatypes.JSON
	SupersededAt  *time.Time `gorm:"index:idx_vehicle_active"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (CoverageAssignmentModel) TableName() string {
	return constants.TableCoverageAssignments
}

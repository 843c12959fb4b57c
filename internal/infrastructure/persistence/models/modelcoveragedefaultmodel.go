package models

import (
	"time"

	"pitstop/internal/shared/constants"
)

// ModelCoverageDefaultModel represents the database persistence model for
// per-model default coverage terms. Applicable is the tagged-variant flag: a
// row with Applicable=false explicitly marks the component as uncovered for
// the model, which is different from having no row at all only in intent —
// both resolve to no assignment.
type ModelCoverageDefaultModel struct {
	ID            uint    `gorm:"primarykey"`
	ModelID       uint    `gorm:"not null;uniqueIndex:idx_model_component"`
	ComponentID   uint    `gorm:"not null;uniqueIndex:idx_model_component"`
	Applicable    bool    `gorm:"not null;default:true"`
	WarrantyYears float64 `gorm:"not null;default:0"`
	WarrantyKM    int64   `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (ModelCoverageDefaultModel) TableName() string {
	return constants.TableModelCoverageDefaults
}

package models

import (
	"time"

	"pitstop/internal/shared/constants"
)

// CoverageComponentModel represents the database persistence model for the
// coverage component catalog
type CoverageComponentModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"uniqueIndex;not null;size:100"`
	Category    string `gorm:"not null;size:20;index"`
	Description string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (CoverageComponentModel) TableName() string {
	return constants.TableCoverageComponents
}

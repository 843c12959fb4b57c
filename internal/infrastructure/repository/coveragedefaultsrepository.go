package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pitstop/internal/domain/warranty"
	"pitstop/internal/infrastructure/persistence/models"
	"pitstop/internal/shared/db"
)

type coverageDefaultsRepository struct {
	db *gorm.DB
}

// NewCoverageDefaultsRepository creates a new model coverage defaults repository
func NewCoverageDefaultsRepository(database *gorm.DB) warranty.DefaultsRepository {
	return &coverageDefaultsRepository{db: database}
}

func (r *coverageDefaultsRepository) GetByModel(ctx context.Context, modelID uint) ([]*warranty.ModelCoverageDefault, error) {
	conn := db.GetTxFromContext(ctx, r.db)

	var records []models.ModelCoverageDefaultModel
	if err := conn.Where("model_id = ?", modelID).Order("component_id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load coverage defaults for model %d: %w", modelID, err)
	}

	defaults := make([]*warranty.ModelCoverageDefault, 0, len(records))
	for _, record := range records {
		d, err := toDomainDefault(&record)
		if err != nil {
			return nil, fmt.Errorf("failed to map coverage default %d: %w", record.ID, err)
		}
		defaults = append(defaults, d)
	}
	return defaults, nil
}

func toDomainDefault(record *models.ModelCoverageDefaultModel) (*warranty.ModelCoverageDefault, error) {
	terms := warranty.NotApplicableTerms()
	if record.Applicable {
		var err error
		terms, err = warranty.NewCoverageTerms(record.WarrantyYears, record.WarrantyKM)
		if err != nil {
			return nil, err
		}
	}
	return warranty.NewModelCoverageDefault(record.ModelID, record.ComponentID, terms)
}

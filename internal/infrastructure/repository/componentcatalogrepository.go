// Package repository provides GORM-backed implementations of the domain
// repository interfaces.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pitstop/internal/domain/warranty"
	"pitstop/internal/infrastructure/persistence/models"
	"pitstop/internal/shared/db"
)

type componentCatalogRepository struct {
	db *gorm.DB
}

// NewComponentCatalogRepository creates a new coverage component catalog repository
func NewComponentCatalogRepository(database *gorm.DB) warranty.CatalogRepository {
	return &componentCatalogRepository{db: database}
}

func (r *componentCatalogRepository) ListAll(ctx context.Context) ([]*warranty.CoverageComponent, error) {
	conn := db.GetTxFromContext(ctx, r.db)

	var records []models.CoverageComponentModel
	if err := conn.Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list coverage components: %w", err)
	}

	components := make([]*warranty.CoverageComponent, 0, len(records))
	for _, record := range records {
		component, err := toDomainComponent(&record)
		if err != nil {
			return nil, fmt.Errorf("failed to map coverage component %d: %w", record.ID, err)
		}
		components = append(components, component)
	}
	return components, nil
}

func toDomainComponent(record *models.CoverageComponentModel) (*warranty.CoverageComponent, error) {
	return warranty.ReconstructCoverageComponent(
		record.ID,
		record.Name,
		warranty.ComponentCategory(record.Category),
		record.Description,
	)
}

package usecases

import (
	"context"
	"fmt"

	"pitstop/internal/application/warranty/dto"
	"pitstop/internal/domain/warranty"
	"pitstop/internal/shared/logger"
)

// ListComponentsUseCase handles listing the coverage component catalog
type ListComponentsUseCase struct {
	catalogRepo warranty.CatalogRepository
	logger      logger.Interface
}

// NewListComponentsUseCase creates a new list components use case
func NewListComponentsUseCase(catalogRepo warranty.CatalogRepository, logger logger.Interface) *ListComponentsUseCase {
	return &ListComponentsUseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Execute executes the list components use case
func (uc *ListComponentsUseCase) Execute(ctx context.Context) ([]dto.ComponentResponse, error) {
	catalog, err := uc.catalogRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load component catalog", "error", err)
		return nil, fmt.Errorf("failed to load component catalog: %w", err)
	}

	responses := make([]dto.ComponentResponse, len(catalog))
	for i, c := range catalog {
		responses[i] = dto.ComponentResponse{
			ID:          c.ID(),
			Name:        c.Name(),
			Category:    c.Category().String(),
			Description: c.Description(),
		}
	}

	return responses, nil
}

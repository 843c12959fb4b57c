package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListComponentsUseCase_Execute_Success(t *testing.T) {
	catalogRepo := new(mockCatalogRepository)
	catalogRepo.On("ListAll", mock.Anything).Return(testCatalog(t), nil)

	uc := NewListComponentsUseCase(catalogRepo, newQuietLogger())

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "Engine", result[0].Name)
	assert.Equal(t, "engine", result[0].Category)
	assert.Equal(t, "Battery", result[2].Name)
	catalogRepo.AssertExpectations(t)
}

func TestListComponentsUseCase_Execute_RepositoryError(t *testing.T) {
	catalogRepo := new(mockCatalogRepository)
	catalogRepo.On("ListAll", mock.Anything).Return(nil, errors.New("connection refused"))

	uc := NewListComponentsUseCase(catalogRepo, newQuietLogger())

	result, err := uc.Execute(context.Background())

	assert.Error(t, err)
	assert.Nil(t, result)
}

package usecases

import (
	"context"
	"testing"
	"time"

	"pitstop/internal/domain/vehicle"
	"pitstop/internal/domain/warranty"
	apperrors "pitstop/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAssignment(t *testing.T, id, vehicleID, componentID uint, start time.Time, years float64, km, baselineKM int64) *warranty.CoverageAssignment {
	t.Helper()
	a, err := warranty.ReconstructCoverageAssignment(
		id, vehicleID, componentID, start, years, km, baselineKM,
		warranty.SourceModelDefault, nil, nil, start,
	)
	require.NoError(t, err)
	return a
}

func TestGetVehicleWarrantyStatusUseCase_Execute_Success(t *testing.T) {
	vehicleRepo := new(mockVehicleRepository)
	catalogRepo := new(mockCatalogRepository)
	assignmentRepo := new(mockAssignmentRepository)

	now := time.Now().UTC()
	veh := testVehicle(t, 1, 7, 50000)
	vehicleRepo.On("GetByID", mock.Anything, uint(1)).Return(veh, nil)
	catalogRepo.On("ListAll", mock.Anything).Return(testCatalog(t), nil)
	assignmentRepo.On("ListActiveByVehicle", mock.Anything, uint(1)).Return([]*warranty.CoverageAssignment{
		// plenty of headroom on both dimensions
		testAssignment(t, 10, 1, 1, now.AddDate(-1, 0, 0), 100, 1000000, 0),
		// one-year warranty activated two years ago
		testAssignment(t, 11, 1, 2, now.AddDate(-2, 0, 0), 1, 1000000, 0),
	}, nil)

	uc := NewGetVehicleWarrantyStatusUseCase(
		vehicleRepo, catalogRepo, assignmentRepo,
		warranty.NewStatusEvaluator(0.9), newQuietLogger(),
	)

	report, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, uint(1), report.Vehicle.ID)
	assert.Equal(t, int64(50000), report.Vehicle.CurrentKM)
	require.Len(t, report.Components, 3)

	engine := report.Components[0]
	assert.Equal(t, uint(1), engine.ComponentID)
	assert.Equal(t, "active", engine.Status)
	assert.False(t, engine.IsExpired)
	require.NotNil(t, engine.ExpiryDate)

	paint := report.Components[1]
	assert.Equal(t, uint(2), paint.ComponentID)
	assert.Equal(t, "expired", paint.Status)
	assert.True(t, paint.IsExpired)
	assert.Equal(t, 100, paint.ProgressPercentage)
	assert.Zero(t, paint.RemainingYears)
	assert.Equal(t, int64(950000), paint.RemainingKM)

	battery := report.Components[2]
	assert.Equal(t, uint(3), battery.ComponentID)
	assert.Equal(t, "not_applicable", battery.Status)
	assert.Nil(t, battery.ExpiryDate)
	assert.False(t, battery.IsExpired)

	vehicleRepo.AssertExpectations(t)
	catalogRepo.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
}

func TestGetVehicleWarrantyStatusUseCase_Execute_NoAssignments(t *testing.T) {
	vehicleRepo := new(mockVehicleRepository)
	catalogRepo := new(mockCatalogRepository)
	assignmentRepo := new(mockAssignmentRepository)

	vehicleRepo.On("GetByID", mock.Anything, uint(1)).Return(testVehicle(t, 1, 7, 50000), nil)
	catalogRepo.On("ListAll", mock.Anything).Return(testCatalog(t), nil)
	assignmentRepo.On("ListActiveByVehicle", mock.Anything, uint(1)).
		Return([]*warranty.CoverageAssignment{}, nil)

	uc := NewGetVehicleWarrantyStatusUseCase(
		vehicleRepo, catalogRepo, assignmentRepo,
		warranty.NewStatusEvaluator(0.9), newQuietLogger(),
	)

	report, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, report.Components, 3)
	for _, c := range report.Components {
		assert.Equal(t, "not_applicable", c.Status)
		assert.Nil(t, c.ExpiryDate)
	}
}

func TestGetVehicleWarrantyStatusUseCase_Execute_VehicleNotFound(t *testing.T) {
	vehicleRepo := new(mockVehicleRepository)
	vehicleRepo.On("GetByID", mock.Anything, uint(42)).Return(nil, vehicle.ErrVehicleNotFound)

	uc := NewGetVehicleWarrantyStatusUseCase(
		vehicleRepo, new(mockCatalogRepository), new(mockAssignmentRepository),
		warranty.NewStatusEvaluator(0.9), newQuietLogger(),
	)

	report, err := uc.Execute(context.Background(), 42)

	assert.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGetVehicleWarrantyStatusUseCase_Execute_CorruptedAssignment(t *testing.T) {
	vehicleRepo := new(mockVehicleRepository)
	catalogRepo := new(mockCatalogRepository)
	assignmentRepo := new(mockAssignmentRepository)

	now := time.Now().UTC()
	vehicleRepo.On("GetByID", mock.Anything, uint(1)).Return(testVehicle(t, 1, 7, 50000), nil)
	catalogRepo.On("ListAll", mock.Anything).Return(testCatalog(t), nil)
	assignmentRepo.On("ListActiveByVehicle", mock.Anything, uint(1)).Return([]*warranty.CoverageAssignment{
		testAssignment(t, 10, 1, 1, now.AddDate(-1, 0, 0), -3, 100000, 0),
	}, nil)

	uc := NewGetVehicleWarrantyStatusUseCase(
		vehicleRepo, catalogRepo, assignmentRepo,
		warranty.NewStatusEvaluator(0.9), newQuietLogger(),
	)

	report, err := uc.Execute(context.Background(), 1)

	assert.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, apperrors.IsIntegrityError(err))
}

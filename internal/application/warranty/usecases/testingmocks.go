package usecases

import (
	"context"

	"pitstop/internal/domain/vehicle"
	"pitstop/internal/domain/warranty"
	"pitstop/internal/shared/logger"

	"github.com/stretchr/testify/mock"
)

type mockVehicleRepository struct {
	mock.Mock
}

func (m *mockVehicleRepository) GetByID(ctx context.Context, id uint) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type mockCatalogRepository struct {
	mock.Mock
}

func (m *mockCatalogRepository) ListAll(ctx context.Context) ([]*warranty.CoverageComponent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*warranty.CoverageComponent), args.Error(1)
}

type mockDefaultsRepository struct {
	mock.Mock
}

func (m *mockDefaultsRepository) GetByModel(ctx context.Context, modelID uint) ([]*warranty.ModelCoverageDefault, error) {
	args := m.Called(ctx, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*warranty.ModelCoverageDefault), args.Error(1)
}

type mockAssignmentRepository struct {
	mock.Mock
}

func (m *mockAssignmentRepository) ReplaceForVehicle(ctx context.Context, vehicleID uint, assignments []*warranty.CoverageAssignment) error {
	args := m.Called(ctx, vehicleID, assignments)
	return args.Error(0)
}

func (m *mockAssignmentRepository) ListActiveByVehicle(ctx context.Context, vehicleID uint) ([]*warranty.CoverageAssignment, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*warranty.CoverageAssignment), args.Error(1)
}

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Debug(msg string, args ...any) {
	m.Called(msg, args)
}

func (m *mockLogger) Info(msg string, args ...any) {
	m.Called(msg, args)
}

func (m *mockLogger) Warn(msg string, args ...any) {
	m.Called(msg, args)
}

func (m *mockLogger) Error(msg string, args ...any) {
	m.Called(msg, args)
}

func (m *mockLogger) With(args ...any) logger.Interface {
	callArgs := m.Called(args)
	if callArgs.Get(0) == nil {
		return m
	}
	return callArgs.Get(0).(logger.Interface)
}

func (m *mockLogger) Named(name string) logger.Interface {
	callArgs := m.Called(name)
	if callArgs.Get(0) == nil {
		return m
	}
	return callArgs.Get(0).(logger.Interface)
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

// newQuietLogger returns a mock logger that accepts any log call. Tests that
// care about specific log lines set their own expectations instead.
func newQuietLogger() *mockLogger {
	l := new(mockLogger)
	l.On("Debugw", mock.Anything, mock.Anything).Return().Maybe()
	l.On("Infow", mock.Anything, mock.Anything).Return().Maybe()
	l.On("Warnw", mock.Anything, mock.Anything).Return().Maybe()
	l.On("Errorw", mock.Anything, mock.Anything).Return().Maybe()
	return l
}

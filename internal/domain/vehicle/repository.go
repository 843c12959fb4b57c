package vehicle

import "context"

// Repository defines the interface for vehicle reads. The warranty core
// never mutates vehicles.
type Repository interface {
	// GetByID retrieves a vehicle by ID
	GetByID(ctx context.Context, id uint) (*Vehicle, error)
}

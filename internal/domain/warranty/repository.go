package warranty

import "context"

// CatalogRepository defines the interface for coverage component catalog reads.
// The catalog includes components that are not applicable by default so
// callers can still select them as explicit overrides.
type CatalogRepository interface {
	// ListAll retrieves the full coverage component catalog
	ListAll(ctx context.Context) ([]*CoverageComponent, error)
}

// DefaultsRepository defines the interface for model coverage default reads.
type DefaultsRepository interface {
	// GetByModel retrieves all configured defaults for a vehicle model.
	// An empty result is not an error: the resolver falls back to the
	// baseline matrix for fully unconfigured models.
	GetByModel(ctx context.Context, modelID uint) ([]*ModelCoverageDefault, error)
}

// AssignmentRepository defines the interface for coverage assignment persistence.
type AssignmentRepository interface {
	// ReplaceForVehicle supersedes the vehicle's active assignments and
	// inserts the new set. The write is atomic: either every row lands or
	// none do — a partial write would leave components silently reporting
	// not_applicable instead of their configured coverage.
	ReplaceForVehicle(ctx context.Context, vehicleID uint, assignments []*CoverageAssignment) error

	// ListActiveByVehicle retrieves the vehicle's active (non-superseded)
	// assignments
	ListActiveByVehicle(ctx context.Context, vehicleID uint) ([]*CoverageAssignment, error)
}

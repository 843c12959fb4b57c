package warranty

import (
	"fmt"
	"time"
)

// CoverageAssignment is the per-vehicle, per-component instantiation of a
// warranty coverage. It records the activation start date, the effective
// bounds on both countdown dimensions, the odometer baseline captured at
// activation, and the provenance of the terms.
//
// Assignments are never deleted: a re-activation supersedes existing rows by
// stamping supersededAt and inserting fresh rows with a later start date.
type CoverageAssignment struct {
	id            uint
	vehicleID     uint
	componentID   uint
	startDate     time.Time
	warrantyYears float64
	warrantyKM    int64
	baselineKM    int64
	source        AssignmentSource
	metadata      map[string]any
	supersededAt  *time.Time
	createdAt     time.Time
}

// NewCoverageAssignment creates a new coverage assignment at warranty
// activation time. startDate must not lie in the future.
func NewCoverageAssignment(
	vehicleID uint,
	componentID uint,
	startDate time.Time,
	warrantyYears float64,
	warrantyKM int64,
	baselineKM int64,
	source AssignmentSource,
) (*CoverageAssignment, error) {
	if vehicleID == 0 {
		return nil, fmt.Errorf("vehicle ID is required")
	}
	if componentID == 0 {
		return nil, fmt.Errorf("component ID is required")
	}
	if startDate.IsZero() {
		return nil, fmt.Errorf("start date is required")
	}
	if startDate.After(time.Now()) {
		return nil, ErrStartDateInFuture
	}
	if warrantyYears < 0 {
		return nil, fmt.Errorf("warranty years cannot be negative: %v", warrantyYears)
	}
	if warrantyKM < 0 {
		return nil, fmt.Errorf("warranty kilometers cannot be negative: %d", warrantyKM)
	}
	if baselineKM < 0 {
		return nil, fmt.Errorf("baseline kilometers cannot be negative: %d", baselineKM)
	}
	if !source.IsValid() {
		return nil, fmt.Errorf("invalid assignment source: %s", source)
	}

	return &CoverageAssignment{
		vehicleID:     vehicleID,
		componentID:   componentID,
		startDate:     startDate,
		warrantyYears: warrantyYears,
		warrantyKM:    warrantyKM,
		baselineKM:    baselineKM,
		source:        source,
		metadata:      make(map[string]any),
		createdAt:     time.Now(),
	}, nil
}

// ReconstructCoverageAssignment reconstructs an assignment from persistence.
// Negative warranty terms are NOT rejected here: they indicate corruption in
// the write path and must surface as integrity errors at evaluation time,
// not vanish during loading.
func ReconstructCoverageAssignment(
	id uint,
	vehicleID uint,
	componentID uint,
	startDate time.Time,
	warrantyYears float64,
	warrantyKM int64,
	baselineKM int64,
	source AssignmentSource,
	metadata map[string]any,
	supersededAt *time.Time,
	createdAt time.Time,
) (*CoverageAssignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}
	if vehicleID == 0 {
		return nil, fmt.Errorf("vehicle ID is required")
	}
	if componentID == 0 {
		return nil, fmt.Errorf("component ID is required")
	}
	if !source.IsValid() {
		return nil, fmt.Errorf("invalid assignment source: %s", source)
	}

	if metadata == nil {
		metadata = make(map[string]any)
	}

	return &CoverageAssignment{
		id:            id,
		vehicleID:     vehicleID,
		componentID:   componentID,
		startDate:     startDate,
		warrantyYears: warrantyYears,
		warrantyKM:    warrantyKM,
		baselineKM:    baselineKM,
		source:        source,
		metadata:      metadata,
		supersededAt:  supersededAt,
		createdAt:     createdAt,
	}, nil
}

// ID returns the assignment ID
func (a *CoverageAssignment) ID() uint {
	return a.id
}

// VehicleID returns the vehicle ID
func (a *CoverageAssignment) VehicleID() uint {
	return a.vehicleID
}

// ComponentID returns the coverage component ID
func (a *CoverageAssignment) ComponentID() uint {
	return a.componentID
}

// StartDate returns the warranty activation date
func (a *CoverageAssignment) StartDate() time.Time {
	return a.startDate
}

// WarrantyYears returns the effective time bound in years
func (a *CoverageAssignment) WarrantyYears() float64 {
	return a.warrantyYears
}

// WarrantyKM returns the effective mileage bound in kilometers
func (a *CoverageAssignment) WarrantyKM() int64 {
	return a.warrantyKM
}

// BaselineKM returns the odometer reading captured at activation,
// the zero-point for mileage proration
func (a *CoverageAssignment) BaselineKM() int64 {
	return a.baselineKM
}

// Source returns the provenance of the assignment terms
func (a *CoverageAssignment) Source() AssignmentSource {
	return a.source
}

// Metadata returns the assignment metadata
func (a *CoverageAssignment) Metadata() map[string]any {
	return a.metadata
}

// SupersededAt returns when the assignment was superseded, nil while active
func (a *CoverageAssignment) SupersededAt() *time.Time {
	return a.supersededAt
}

// CreatedAt returns when the assignment was created
func (a *CoverageAssignment) CreatedAt() time.Time {
	return a.createdAt
}

// IsActive reports whether the assignment is the current one for its
// (vehicle, component) pair
func (a *CoverageAssignment) IsActive() bool {
	return a.supersededAt == nil
}

// SetID sets the assignment ID (only for persistence layer use)
func (a *CoverageAssignment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assignment ID cannot be zero")
	}
	a.id = id
	return nil
}

// Supersede marks the assignment as replaced by a newer activation.
func (a *CoverageAssignment) Supersede(at time.Time) error {
	if a.supersededAt != nil {
		return ErrAssignmentSuperseded
	}
	a.supersededAt = &at
	return nil
}

// SetMetadata sets a metadata value
func (a *CoverageAssignment) SetMetadata(key string, value any) {
	if a.metadata == nil {
		a.metadata = make(map[string]any)
	}
	a.metadata[key] = value
}

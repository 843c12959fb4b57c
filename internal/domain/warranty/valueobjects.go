// Package warranty provides domain models and business logic for vehicle
// warranty determination. Each vehicle inherits a matrix of coverage
// components from its model, every coverage bounded by two independent
// countdown dimensions: elapsed calendar time and accumulated mileage,
// whichever is exhausted first.
package warranty

// ComponentCategory represents the coverage category of a warranty component
type ComponentCategory string

const (
	// CategoryEngine covers the engine and its internals
	CategoryEngine ComponentCategory = "engine"
	// CategoryPaint covers paintwork and corrosion
	CategoryPaint ComponentCategory = "paint"
	// CategoryTransmission covers the gearbox and drivetrain
	CategoryTransmission ComponentCategory = "transmission"
	// CategoryElectrical covers wiring, sensors and control units
	CategoryElectrical ComponentCategory = "electrical"
	// CategoryBattery covers the hybrid/EV traction battery
	CategoryBattery ComponentCategory = "battery"
	// CategoryOther covers anything outside the named categories
	CategoryOther ComponentCategory = "other"
)

// IsValid checks if the component category is valid
func (cc ComponentCategory) IsValid() bool {
	switch cc {
	case CategoryEngine, CategoryPaint, CategoryTransmission, CategoryElectrical, CategoryBattery, CategoryOther:
		return true
	default:
		return false
	}
}

// String returns the string representation of the component category
func (cc ComponentCategory) String() string {
	return string(cc)
}

// AssignmentSource represents the provenance of a coverage assignment
type AssignmentSource string

const (
	// SourceModelDefault indicates terms inherited from the vehicle model's default matrix
	SourceModelDefault AssignmentSource = "model_default"
	// SourceOverride indicates terms explicitly supplied by the caller at activation
	SourceOverride AssignmentSource = "override"
)

// IsValid checks if the assignment source is valid
func (as AssignmentSource) IsValid() bool {
	switch as {
	case SourceModelDefault, SourceOverride:
		return true
	default:
		return false
	}
}

// String returns the string representation of the assignment source
func (as AssignmentSource) String() string {
	return string(as)
}

// CoverageStatus represents the evaluated state of a coverage component
type CoverageStatus string

const (
	// StatusActive indicates the coverage is in force with headroom on both dimensions
	StatusActive CoverageStatus = "active"
	// StatusExpiringSoon indicates the binding dimension has passed the warning threshold
	StatusExpiringSoon CoverageStatus = "expiring_soon"
	// StatusExpired indicates at least one dimension is exhausted
	StatusExpired CoverageStatus = "expired"
	// StatusNotApplicable indicates the vehicle has no active assignment for the component
	StatusNotApplicable CoverageStatus = "not_applicable"
)

// IsValid checks if the coverage status is valid
func (cs CoverageStatus) IsValid() bool {
	switch cs {
	case StatusActive, StatusExpiringSoon, StatusExpired, StatusNotApplicable:
		return true
	default:
		return false
	}
}

// String returns the string representation of the coverage status
func (cs CoverageStatus) String() string {
	return string(cs)
}

// IsExpired checks if the status indicates exhausted coverage
func (cs CoverageStatus) IsExpired() bool {
	return cs == StatusExpired
}

// Package constants defines shared constant values used across the application.
package constants

// Database table names
const (
	TableVehicles              = "vehicles"
	TableCoverageComponents    = "coverage_components"
	TableModelCoverageDefaults = "model_coverage_defaults"
	TableCoverageAssignments   = "coverage_assignments"
)

// HTTP header names
const (
	HeaderRequestID = "X-Request-ID"
)

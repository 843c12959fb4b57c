package warranty

import (
	"errors"
	"fmt"
)

var (
	// ErrComponentNotFound is returned when a coverage component is not found
	ErrComponentNotFound = errors.New("coverage component not found")

	// ErrUnknownOverrideComponent is returned when an override references a
	// component id that does not exist in the catalog
	ErrUnknownOverrideComponent = errors.New("override references unknown component")

	// ErrOverrideYearsOutOfRange is returned when override warranty years fall
	// outside the allowed range
	ErrOverrideYearsOutOfRange = errors.New("override warranty years out of range")

	// ErrOverrideKilometersNegative is returned when override warranty
	// kilometers are negative
	ErrOverrideKilometersNegative = errors.New("override warranty kilometers cannot be negative")

	// ErrOverrideTermsRequired is returned when a selected override for a
	// component without applicable model defaults omits years or kilometers
	ErrOverrideTermsRequired = errors.New("override terms required for component without applicable defaults")

	// ErrStartDateInFuture is returned when an activation date lies in the future
	ErrStartDateInFuture = errors.New("warranty start date cannot be in the future")

	// ErrAssignmentCorrupted is returned when a persisted assignment carries
	// negative warranty terms or baseline. This indicates a bug in the write
	// path and is surfaced rather than silently clamped.
	ErrAssignmentCorrupted = errors.New("coverage assignment data corrupted")

	// ErrAssignmentSuperseded is returned when an operation targets an
	// assignment that has already been superseded by a re-activation
	ErrAssignmentSuperseded = errors.New("coverage assignment already superseded")
)

// CorruptedAssignmentError wraps ErrAssignmentCorrupted with field context.
func CorruptedAssignmentError(field string, value any) error {
	return fmt.Errorf("%w: %s = %v", ErrAssignmentCorrupted, field, value)
}

// UnknownOverrideComponentError wraps ErrUnknownOverrideComponent with the offending id.
func UnknownOverrideComponentError(componentID uint) error {
	return fmt.Errorf("%w: component %d", ErrUnknownOverrideComponent, componentID)
}

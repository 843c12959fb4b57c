package warranty

import (
	"math"
	"time"
)

const (
	// DefaultExpiringSoonThreshold is the binding fraction at which a coverage
	// is flagged as expiring soon.
	DefaultExpiringSoonThreshold = 0.9

	// hoursPerYear converts elapsed durations to fractional years using the
	// mean Gregorian year length.
	hoursPerYear = 24 * 365.25
)

// ComponentStatus is the evaluated state of one coverage component for one
// vehicle at one instant. Derived data: computed fresh on every query, never
// persisted.
type ComponentStatus struct {
	ComponentID        uint
	Status             CoverageStatus
	RemainingYears     float64
	RemainingKM        int64
	ExpiryDate         time.Time
	ProgressPercentage int
	IsExpired          bool
}

// StatusEvaluator computes coverage statuses from assignments and live
// vehicle telemetry. Pure and deterministic: no I/O, no shared mutable
// state, safe for concurrent use.
type StatusEvaluator struct {
	expiringSoonThreshold float64
}

// NewStatusEvaluator creates an evaluator. A threshold outside (0, 1) falls
// back to the default.
func NewStatusEvaluator(expiringSoonThreshold float64) *StatusEvaluator {
	if expiringSoonThreshold <= 0 || expiringSoonThreshold >= 1 {
		expiringSoonThreshold = DefaultExpiringSoonThreshold
	}
	return &StatusEvaluator{expiringSoonThreshold: expiringSoonThreshold}
}

// Evaluate computes the status of one assignment against the current date
// and odometer reading.
//
// Both countdown dimensions produce an exhaustion fraction; the larger one
// (the binding dimension) governs, matching "whichever comes first"
// semantics. A zero bound on either dimension means that dimension is
// immediately exhausted, not a division error. An odometer reading below the
// activation baseline counts as zero driven kilometers, never negative.
//
// Negative persisted warranty terms or baseline indicate corruption in the
// write path and return ErrAssignmentCorrupted.
func (e *StatusEvaluator) Evaluate(assignment *CoverageAssignment, now time.Time, currentKM int64) (*ComponentStatus, error) {
	if assignment.WarrantyYears() < 0 {
		return nil, CorruptedAssignmentError("warranty_years", assignment.WarrantyYears())
	}
	if assignment.WarrantyKM() < 0 {
		return nil, CorruptedAssignmentError("warranty_km", assignment.WarrantyKM())
	}
	if assignment.BaselineKM() < 0 {
		return nil, CorruptedAssignmentError("baseline_km", assignment.BaselineKM())
	}

	elapsedYears := now.Sub(assignment.StartDate()).Hours() / hoursPerYear
	if elapsedYears < 0 {
		elapsedYears = 0
	}

	timeFraction := 1.0
	if assignment.WarrantyYears() > 0 {
		timeFraction = elapsedYears / assignment.WarrantyYears()
	}

	drivenKM := currentKM - assignment.BaselineKM()
	if drivenKM < 0 {
		drivenKM = 0
	}

	kmFraction := 1.0
	if assignment.WarrantyKM() > 0 {
		kmFraction = float64(drivenKM) / float64(assignment.WarrantyKM())
	}

	bindingFraction := math.Max(timeFraction, kmFraction)

	status := StatusActive
	switch {
	case bindingFraction >= 1.0:
		status = StatusExpired
	case bindingFraction >= e.expiringSoonThreshold:
		status = StatusExpiringSoon
	}

	remainingYears := assignment.WarrantyYears() - elapsedYears
	if remainingYears < 0 {
		remainingYears = 0
	}
	remainingKM := assignment.WarrantyKM() - drivenKM
	if remainingKM < 0 {
		remainingKM = 0
	}

	return &ComponentStatus{
		ComponentID:        assignment.ComponentID(),
		Status:             status,
		RemainingYears:     remainingYears,
		RemainingKM:        remainingKM,
		ExpiryDate:         addYears(assignment.StartDate(), assignment.WarrantyYears()),
		ProgressPercentage: int(math.Round(math.Min(bindingFraction, 1) * 100)),
		IsExpired:          status.IsExpired(),
	}, nil
}

// NotApplicableStatus returns the status for a catalog component with no
// active assignment on the vehicle. No date or mileage math is performed.
func NotApplicableStatus(componentID uint) *ComponentStatus {
	return &ComponentStatus{
		ComponentID: componentID,
		Status:      StatusNotApplicable,
	}
}

// addYears adds a possibly fractional number of years to a date. Whole years
// use calendar arithmetic so round durations land on the anniversary date;
// the fractional remainder is added as mean-year days. The result is the
// time-dimension expiry date, computed for display even when the mileage
// dimension is binding.
func addYears(start time.Time, years float64) time.Time {
	whole := int(years)
	fraction := years - float64(whole)
	expiry := start.AddDate(whole, 0, 0)
	if fraction > 0 {
		expiry = expiry.Add(time.Duration(fraction * hoursPerYear * float64(time.Hour)))
	}
	return expiry
}

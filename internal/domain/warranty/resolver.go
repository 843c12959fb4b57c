package warranty

import (
	"fmt"
	"math"
	"time"
)

// DefaultMaxOverrideYears bounds caller-supplied warranty durations.
const DefaultMaxOverrideYears = 20

// Override is a caller-supplied adjustment for one component at activation
// time. Selected=false explicitly excludes a component the model marks
// applicable. Years and Kilometers are optional; when omitted on a selected
// component the model's applicable default terms are inherited.
type Override struct {
	Selected   bool
	Years      *float64
	Kilometers *float64
}

// AssignmentResolver produces the set of coverage assignments to persist when
// a vehicle's warranty is activated. It merges the model's default matrix
// with caller overrides; resolution is all-or-nothing: the first invalid
// entry aborts the whole set.
type AssignmentResolver struct {
	baseline         DefaultMatrix
	maxOverrideYears float64
}

// NewAssignmentResolver creates a resolver with the given fallback matrix for
// unconfigured models. maxOverrideYears <= 0 falls back to the default bound.
func NewAssignmentResolver(baseline DefaultMatrix, maxOverrideYears float64) *AssignmentResolver {
	if maxOverrideYears <= 0 {
		maxOverrideYears = DefaultMaxOverrideYears
	}
	return &AssignmentResolver{
		baseline:         baseline,
		maxOverrideYears: maxOverrideYears,
	}
}

// Resolve computes the assignment rows for a warranty activation.
//
// For each catalog component, in order:
//   - a selected override wins, with source=override;
//   - otherwise applicable model defaults apply, with source=model_default;
//   - an explicit Selected=false, or inapplicable defaults, skip the component.
//
// A model with no configured defaults at all falls back to the baseline
// matrix keyed by component category. Every emitted row carries the
// activation date as start date and currentKM as odometer baseline.
func (r *AssignmentResolver) Resolve(
	vehicleID uint,
	activationDate time.Time,
	currentKM int64,
	catalog []*CoverageComponent,
	defaults []*ModelCoverageDefault,
	overrides map[uint]Override,
) ([]*CoverageAssignment, error) {
	if vehicleID == 0 {
		return nil, fmt.Errorf("vehicle ID is required")
	}
	if currentKM < 0 {
		return nil, fmt.Errorf("current odometer reading cannot be negative: %d", currentKM)
	}

	known := make(map[uint]*CoverageComponent, len(catalog))
	for _, component := range catalog {
		known[component.ID()] = component
	}
	for componentID := range overrides {
		if _, ok := known[componentID]; !ok {
			return nil, UnknownOverrideComponentError(componentID)
		}
	}

	terms := r.defaultTerms(catalog, defaults)

	assignments := make([]*CoverageAssignment, 0, len(catalog))
	for _, component := range catalog {
		componentTerms := terms[component.ID()]

		override, overridden := overrides[component.ID()]
		var effective CoverageTerms
		var source AssignmentSource

		switch {
		case overridden && override.Selected:
			resolved, err := r.resolveOverrideTerms(component, override, componentTerms)
			if err != nil {
				return nil, err
			}
			effective = resolved
			source = SourceOverride
		case overridden:
			// Explicit deselection beats applicable model defaults.
			continue
		case componentTerms.Applicable():
			effective = componentTerms
			source = SourceModelDefault
		default:
			continue
		}

		assignment, err := NewCoverageAssignment(
			vehicleID,
			component.ID(),
			activationDate,
			effective.Years(),
			effective.Kilometers(),
			currentKM,
			source,
		)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	return assignments, nil
}

// defaultTerms maps every catalog component to its model default terms,
// falling back to the baseline matrix when the model has no rows at all.
// A configured model with a missing row means not applicable, not an error.
func (r *AssignmentResolver) defaultTerms(
	catalog []*CoverageComponent,
	defaults []*ModelCoverageDefault,
) map[uint]CoverageTerms {
	terms := make(map[uint]CoverageTerms, len(catalog))

	if len(defaults) == 0 {
		for _, component := range catalog {
			terms[component.ID()] = r.baseline.TermsFor(component.Category())
		}
		return terms
	}

	byComponent := make(map[uint]CoverageTerms, len(defaults))
	for _, d := range defaults {
		byComponent[d.ComponentID()] = d.Terms()
	}
	for _, component := range catalog {
		if t, ok := byComponent[component.ID()]; ok {
			terms[component.ID()] = t
		} else {
			terms[component.ID()] = NotApplicableTerms()
		}
	}
	return terms
}

// resolveOverrideTerms validates and materializes the terms of a selected
// override, inheriting the model defaults for whichever of years/kilometers
// the caller omitted.
func (r *AssignmentResolver) resolveOverrideTerms(
	component *CoverageComponent,
	override Override,
	defaults CoverageTerms,
) (CoverageTerms, error) {
	years := defaults.Years()
	kilometers := defaults.Kilometers()

	if override.Years == nil && !defaults.Applicable() {
		return CoverageTerms{}, fmt.Errorf("%w: component %d (%s) needs explicit years",
			ErrOverrideTermsRequired, component.ID(), component.Name())
	}
	if override.Kilometers == nil && !defaults.Applicable() {
		return CoverageTerms{}, fmt.Errorf("%w: component %d (%s) needs explicit kilometers",
			ErrOverrideTermsRequired, component.ID(), component.Name())
	}

	if override.Years != nil {
		if *override.Years < 0 || *override.Years > r.maxOverrideYears {
			return CoverageTerms{}, fmt.Errorf("%w: component %d years %v not in [0, %g]",
				ErrOverrideYearsOutOfRange, component.ID(), *override.Years, r.maxOverrideYears)
		}
		years = *override.Years
	}
	if override.Kilometers != nil {
		if *override.Kilometers < 0 {
			return CoverageTerms{}, fmt.Errorf("%w: component %d kilometers %v",
				ErrOverrideKilometersNegative, component.ID(), *override.Kilometers)
		}
		kilometers = int64(math.Round(*override.Kilometers))
	}

	return NewCoverageTerms(years, kilometers)
}

package warranty

import "fmt"

// ModelCoverageDefault maps one catalog component to its default coverage
// terms for a given vehicle model. One row per (model, component) pair.
// Read-only from the warranty core's perspective; mutated only through model
// configuration management.
type ModelCoverageDefault struct {
	modelID     uint
	componentID uint
	terms       CoverageTerms
}

// NewModelCoverageDefault creates a new model coverage default
func NewModelCoverageDefault(modelID, componentID uint, terms CoverageTerms) (*ModelCoverageDefault, error) {
	if modelID == 0 {
		return nil, fmt.Errorf("model ID is required")
	}
	if componentID == 0 {
		return nil, fmt.Errorf("component ID is required")
	}

	return &ModelCoverageDefault{
		modelID:     modelID,
		componentID: componentID,
		terms:       terms,
	}, nil
}

// ModelID returns the vehicle model ID
func (d *ModelCoverageDefault) ModelID() uint {
	return d.modelID
}

// ComponentID returns the component ID
func (d *ModelCoverageDefault) ComponentID() uint {
	return d.componentID
}

// Terms returns the default coverage terms
func (d *ModelCoverageDefault) Terms() CoverageTerms {
	return d.terms
}

// DefaultMatrix maps component categories to coverage terms. It backs the
// built-in fallback applied when a vehicle model has no configured defaults
// at all, so that unconfigured models never block warranty activation.
type DefaultMatrix map[ComponentCategory]CoverageTerms

// TermsFor returns the terms for a category, or the not-applicable variant
// when the matrix has no entry for it.
func (m DefaultMatrix) TermsFor(category ComponentCategory) CoverageTerms {
	if terms, ok := m[category]; ok {
		return terms
	}
	return NotApplicableTerms()
}

// BaselineMatrix returns the built-in fallback coverage matrix. The battery
// category is deliberately absent: baseline coverage never includes the
// traction battery, only model-specific configuration can.
func BaselineMatrix() DefaultMatrix {
	engine, _ := NewCoverageTerms(10, 200000)
	paint, _ := NewCoverageTerms(10, 200000)
	transmission, _ := NewCoverageTerms(5, 100000)
	electrical, _ := NewCoverageTerms(5, 100000)

	return DefaultMatrix{
		CategoryEngine:       engine,
		CategoryPaint:        paint,
		CategoryTransmission: transmission,
		CategoryElectrical:   electrical,
	}
}

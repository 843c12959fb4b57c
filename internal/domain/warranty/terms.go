package warranty

import "fmt"

// CoverageTerms is an explicit tagged variant distinguishing "covered with
// these bounds" from "not covered at all". This removes the ambiguity between
// a zero-duration warranty (immediately exhausted but configured) and an
// inapplicable component (no assignment ever emitted).
type CoverageTerms struct {
	applicable bool
	years      float64
	kilometers int64
}

// NewCoverageTerms creates applicable coverage terms bounded by years and kilometers.
func NewCoverageTerms(years float64, kilometers int64) (CoverageTerms, error) {
	if years < 0 {
		return CoverageTerms{}, fmt.Errorf("warranty years cannot be negative: %v", years)
	}
	if kilometers < 0 {
		return CoverageTerms{}, fmt.Errorf("warranty kilometers cannot be negative: %d", kilometers)
	}

	return CoverageTerms{
		applicable: true,
		years:      years,
		kilometers: kilometers,
	}, nil
}

// NotApplicableTerms returns the terms variant for an uncovered component.
func NotApplicableTerms() CoverageTerms {
	return CoverageTerms{}
}

// Applicable reports whether the component is covered at all.
func (t CoverageTerms) Applicable() bool {
	return t.applicable
}

// Years returns the time bound of the coverage in years. Zero is valid and
// means a zero-duration warranty, not absence of coverage.
func (t CoverageTerms) Years() float64 {
	return t.years
}

// Kilometers returns the mileage bound of the coverage.
func (t CoverageTerms) Kilometers() int64 {
	return t.kilometers
}

// String returns a human-readable representation for logging.
func (t CoverageTerms) String() string {
	if !t.applicable {
		return "not_applicable"
	}
	return fmt.Sprintf("%gy/%dkm", t.years, t.kilometers)
}

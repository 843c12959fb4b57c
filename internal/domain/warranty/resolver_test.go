package warranty

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture(t *testing.T) []*CoverageComponent {
	t.Helper()
	specs := []struct {
		id       uint
		name     string
		category ComponentCategory
	}{
		{1, "Engine", CategoryEngine},
		{2, "Paint", CategoryPaint},
		{3, "Transmission", CategoryTransmission},
		{4, "Electrical", CategoryElectrical},
		{5, "Battery", CategoryBattery},
	}

	catalog := make([]*CoverageComponent, 0, len(specs))
	for _, s := range specs {
		c, err := ReconstructCoverageComponent(s.id, s.name, s.category, "")
		require.NoError(t, err)
		catalog = append(catalog, c)
	}
	return catalog
}

func defaultsFixture(t *testing.T) []*ModelCoverageDefault {
	t.Helper()
	applicable := func(componentID uint, years float64, km int64) *ModelCoverageDefault {
		terms, err := NewCoverageTerms(years, km)
		require.NoError(t, err)
		d, err := NewModelCoverageDefault(7, componentID, terms)
		require.NoError(t, err)
		return d
	}
	notApplicable := func(componentID uint) *ModelCoverageDefault {
		d, err := NewModelCoverageDefault(7, componentID, NotApplicableTerms())
		require.NoError(t, err)
		return d
	}

	return []*ModelCoverageDefault{
		applicable(1, 10, 200000),
		applicable(2, 3, 60000),
		applicable(3, 5, 100000),
		notApplicable(4),
		notApplicable(5),
	}
}

func activationDate() time.Time {
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
}

func assignmentByComponent(assignments []*CoverageAssignment) map[uint]*CoverageAssignment {
	result := make(map[uint]*CoverageAssignment, len(assignments))
	for _, a := range assignments {
		result[a.ComponentID()] = a
	}
	return result
}

func TestAssignmentResolver_Resolve_ModelDefaults(t *testing.T) {
	resolver := NewAssignmentResolver(BaselineMatrix(), 20)

	assignments, err := resolver.Resolve(1, activationDate(), 1500, catalogFixture(t), defaultsFixture(t), nil)

	require.NoError(t, err)
	require.Len(t, assignments, 3)

	byComponent := assignmentByComponent(assignments)
	engine := byComponent[1]
	require.NotNil(t, engine)
	assert.Equal(t, 10.0, engine.WarrantyYears())
	assert.Equal(t, int64(200000), engine.WarrantyKM())
	assert.Equal(t, int64(1500), engine.BaselineKM())
	assert.Equal(t, SourceModelDefault, engine.Source())
	assert.Equal(t, activationDate(), engine.StartDate())

	// not-applicable components emit no row
	assert.Nil(t, byComponent[4])
	assert.Nil(t, byComponent[5])
}

func TestAssignmentResolver_Resolve_OverrideSelectsInapplicableComponent(t *testing.T) {
	resolver := NewAssignmentResolver(BaselineMatrix(), 20)

	years := 8.0
	kilometers := 160000.0
	overrides := map[uint]Override{
		5: {Selected: true, Years: &years, Kilometers: &kilometers},
	}

	assignments, err := resolver.Resolve(1, activationDate(), 0, catalogFixture(t), defaultsFixture(t), overrides)

	require.NoError(t, err)
	byComponent := assignmentByComponent(assignments)

	battery := byComponent[5]
	require.NotNil(t, battery)
	assert.Equal(t, 8.0, battery.WarrantyYears())
	assert.Equal(t, int64(160000), battery.WarrantyKM())
	assert.Equal(t, SourceOverride, battery.Source())
}

func TestAssignmentResolver_Resolve_OverrideInheritsOmittedTerms(t *testing.T) {
	resolver := NewAssignmentResolver(BaselineMatrix(), 20)

	years := 12.0
	overrides := map[uint]Override{
		1: {Selected: true, Years: &years},
	}

	assignments, err := resolver.Resolve(1, activationDate(), 0, catalogFixture(t), defaultsFixture(t), overrides)

	require.NoError(t, err)
	engine := assignmentByComponent(assignments)[1]
	require.NotNil(t, engine)
	assert.Equal(t, 12.0, engine.WarrantyYears())
	assert.Equal(t, int64(200000), engine.WarrantyKM())
	assert.Equal(t, SourceOverride, engine.Source())
}

func TestAssignmentResolver_Resolve_DeselectionBeatsApplicableDefault(t *testing.T) {
	resolver := NewAssignmentResolver(BaselineMatrix(), 20)

	overrides := map[uint]Override{
		2: {Selected: false},
	}

	assignments, err := resolver.Resolve(1, activationDate(), 0, catalogFixture(t), defaultsFixture(t), overrides)

	require.NoError(t, err)
	byComponent := assignmentByComponent(assignments)
	assert.Nil(t, byComponent[2])
	assert.NotNil(t, byComponent[1])
	assert.NotNil(t, byComponent[3])
}

func TestAssignmentResolver_Resolve_BaselineFallbackForUnconfiguredModel(t *testing.T) {
	resolver := NewAssignmentResolver(BaselineMatrix(), 20)

	assignments, err := resolver.Resolve(1, activationDate(), 0, catalogFixture(t), nil, nil)

	require.NoError(t, err)
	byComponent := assignmentByComponent(assignments)

	engine := byComponent[1]
	require.NotNil(t, engine)
	assert.Equal(t, 10.0, engine.WarrantyYears())
	assert.Equal(t, int64(200000), engine.WarrantyKM())

	transmission := byComponent[3]
	require.NotNil(t, transmission)
	assert.Equal(t, 5.0, transmission.WarrantyYears())
	assert.Equal(t, int64(100000), transmission.WarrantyKM())

	// baseline never covers the traction battery
	assert.Nil(t, byComponent[5])
}

func TestAssignmentResolver_Resolve_ConfiguredModelMissingRowMeansNotApplicable(t *testing.T) {
	// A model with any configured rows does not fall back to the baseline for
	// components it leaves out.
	resolver := NewAssignmentResolver(BaselineMatrix(), 20)

	terms, err := NewCoverageTerms(10, 200000)
	require.NoError(t, err)
	engineOnly, err := NewModelCoverageDefault(7, 1, terms)
	require.NoError(t, err)

	assignments, err := resolver.Resolve(1, activationDate(), 0, catalogFixture(t), []*ModelCoverageDefault{engineOnly}, nil)

	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, uint(1), assignments[0].ComponentID())
}

func TestAssignmentResolver_Resolve_UnknownOverrideComponent(t *testing.T) {
	resolver := NewAssignmentResolver(BaselineMatrix(), 20)

	overrides := map[uint]Override{
		99: {Selected: true},
	}

	assignments, err := resolver.Resolve(1, activationDate(), 0, catalogFixture(t), defaultsFixture(t), overrides)

	assert.Nil(t, assignments)
	assert.True(t, errors.Is(err, ErrUnknownOverrideComponent))
}

func TestAssignmentResolver_Resolve_OverrideYearsOutOfRange(t *testing.T) {
	resolver := NewAssignmentResolver(BaselineMatrix(), 20)

	years := 25.0
	overrides := map[uint]Override{
		1: {Selected: true, Years: &years},
	}

	assignments, err := resolver.Resolve(1, activationDate(), 0, catalogFixture(t), defaultsFixture(t), overrides)

	assert.Nil(t, assignments)
	assert.True(t, errors.Is(err, ErrOverrideYearsOutOfRange))
}

func TestAssignmentResolver_Resolve_OverrideNegativeKilometers(t *testing.T) {
	resolver := NewAssignmentResolver(BaselineMatrix(), 20)

	kilometers := -100.0
	overrides := map[uint]Override{
		1: {Selected: true, Kilometers: &kilometers},
	}

	assignments, err := resolver.Resolve(1, activationDate(), 0, catalogFixture(t), defaultsFixture(t), overrides)

	assert.Nil(t, assignments)
	assert.True(t, errors.Is(err, ErrOverrideKilometersNegative))
}

func TestAssignmentResolver_Resolve_OverrideWithoutDefaultsNeedsExplicitTerms(t *testing.T) {
	// Selecting a component whose model default is not applicable requires
	// explicit terms since there is nothing to inherit.
	resolver := NewAssignmentResolver(BaselineMatrix(), 20)

	overrides := map[uint]Override{
		5: {Selected: true},
	}

	assignments, err := resolver.Resolve(1, activationDate(), 0, catalogFixture(t), defaultsFixture(t), overrides)

	assert.Nil(t, assignments)
	assert.True(t, errors.Is(err, ErrOverrideTermsRequired))
}

func TestAssignmentResolver_Resolve_FutureActivationDate(t *testing.T) {
	resolver := NewAssignmentResolver(BaselineMatrix(), 20)
	future := time.Now().AddDate(1, 0, 0)

	assignments, err := resolver.Resolve(1, future, 0, catalogFixture(t), defaultsFixture(t), nil)

	assert.Nil(t, assignments)
	assert.True(t, errors.Is(err, ErrStartDateInFuture))
}

func TestAssignmentResolver_Resolve_NegativeOdometer(t *testing.T) {
	resolver := NewAssignmentResolver(BaselineMatrix(), 20)

	assignments, err := resolver.Resolve(1, activationDate(), -10, catalogFixture(t), defaultsFixture(t), nil)

	assert.Nil(t, assignments)
	assert.Error(t, err)
}

func TestAssignmentResolver_Resolve_FractionalOverrideKilometersRounded(t *testing.T) {
	resolver := NewAssignmentResolver(BaselineMatrix(), 20)

	kilometers := 150000.6
	overrides := map[uint]Override{
		1: {Selected: true, Kilometers: &kilometers},
	}

	assignments, err := resolver.Resolve(1, activationDate(), 0, catalogFixture(t), defaultsFixture(t), overrides)

	require.NoError(t, err)
	engine := assignmentByComponent(assignments)[1]
	require.NotNil(t, engine)
	assert.Equal(t, int64(150001), engine.WarrantyKM())
}

package warranty

import "fmt"

// CoverageComponent represents one warranty coverage category in the catalog
// (e.g., Engine, Paint). Reference data: created and edited by model
// configuration management, never mutated by the warranty core.
type CoverageComponent struct {
	id          uint
	name        string
	category    ComponentCategory
	description string
}

// NewCoverageComponent creates a new coverage component
func NewCoverageComponent(name string, category ComponentCategory, description string) (*CoverageComponent, error) {
	if name == "" {
		return nil, fmt.Errorf("component name is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid component category: %s", category)
	}

	return &CoverageComponent{
		name:        name,
		category:    category,
		description: description,
	}, nil
}

// ReconstructCoverageComponent reconstructs a coverage component from persistence
func ReconstructCoverageComponent(id uint, name string, category ComponentCategory, description string) (*CoverageComponent, error) {
	if id == 0 {
		return nil, fmt.Errorf("component ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("component name is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid component category: %s", category)
	}

	return &CoverageComponent{
		id:          id,
		name:        name,
		category:    category,
		description: description,
	}, nil
}

// ID returns the component ID
func (c *CoverageComponent) ID() uint {
	return c.id
}

// Name returns the component name
func (c *CoverageComponent) Name() string {
	return c.name
}

// Category returns the component category
func (c *CoverageComponent) Category() ComponentCategory {
	return c.category
}

// Description returns the component description
func (c *CoverageComponent) Description() string {
	return c.description
}

// SetID sets the component ID (only for persistence layer use)
func (c *CoverageComponent) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("component ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("component ID cannot be zero")
	}
	c.id = id
	return nil
}

// Package vehicle provides the read-only vehicle entity consumed by the
// warranty core. Vehicles are managed elsewhere in the system; this core
// only reads their identity and live telemetry (current odometer reading).
package vehicle

import "fmt"

// Vehicle represents a vehicle with its model linkage and live telemetry.
type Vehicle struct {
	id          uint
	modelID     uint
	vin         string
	plateNumber string
	currentKM   int64
}

// ReconstructVehicle reconstructs a vehicle from persistence
func ReconstructVehicle(id, modelID uint, vin, plateNumber string, currentKM int64) (*Vehicle, error) {
	if id == 0 {
		return nil, fmt.Errorf("vehicle ID cannot be zero")
	}
	if modelID == 0 {
		return nil, fmt.Errorf("vehicle model ID is required")
	}
	if currentKM < 0 {
		return nil, fmt.Errorf("current odometer reading cannot be negative: %d", currentKM)
	}

	return &Vehicle{
		id:          id,
		modelID:     modelID,
		vin:         vin,
		plateNumber: plateNumber,
		currentKM:   currentKM,
	}, nil
}

// ID returns the vehicle ID
func (v *Vehicle) ID() uint {
	return v.id
}

// ModelID returns the vehicle model ID
func (v *Vehicle) ModelID() uint {
	return v.modelID
}

// VIN returns the vehicle identification number
func (v *Vehicle) VIN() string {
	return v.vin
}

// PlateNumber returns the registration plate number
func (v *Vehicle) PlateNumber() string {
	return v.plateNumber
}

// CurrentKM returns the vehicle's current odometer reading
func (v *Vehicle) CurrentKM() int64 {
	return v.currentKM
}

package vehicle

import "errors"

var (
	// ErrVehicleNotFound is returned when a vehicle is not found
	ErrVehicleNotFound = errors.New("vehicle not found")
)

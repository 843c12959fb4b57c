// Package dto defines the request and response shapes of the warranty
// application layer.
package dto

import "time"

// ComponentOverrideRequest adjusts one coverage component at activation time.
// Selected=false excludes a component the model marks applicable. Years and
// Kilometers are optional; omitted values inherit the model defaults.
type ComponentOverrideRequest struct {
	ComponentID uint     `json:"component_id" validate:"required"`
	Selected    bool     `json:"selected"`
	Years       *float64 `json:"years,omitempty" validate:"omitempty,gte=0"`
	Kilometers  *float64 `json:"kilometers,omitempty" validate:"omitempty,gte=0"`
}

// ActivateWarrantyRequest activates warranty coverage for a vehicle,
// typically at its first completed service.
type ActivateWarrantyRequest struct {
	ActivationDate string                     `json:"activation_date" validate:"required"`
	CurrentKM      int64                      `json:"current_km" validate:"gte=0"`
	Overrides      []ComponentOverrideRequest `json:"overrides,omitempty" validate:"omitempty,dive"`
}

// AssignmentResponse is one persisted coverage assignment row.
type AssignmentResponse struct {
	ID            uint      `json:"id"`
	VehicleID     uint      `json:"vehicle_id"`
	ComponentID   uint      `json:"component_id"`
	ComponentName string    `json:"component_name"`
	StartDate     time.Time `json:"start_date"`
	WarrantyYears float64   `json:"warranty_years"`
	WarrantyKM    int64     `json:"warranty_km"`
	BaselineKM    int64     `json:"baseline_km"`
	Source        string    `json:"source"`
	CreatedAt     time.Time `json:"created_at"`
}

// ComponentResponse is one catalog entry.
type ComponentResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// ComponentStatusResponse is the evaluated state of one coverage component.
// ExpiryDate is omitted for not_applicable components, for which no date or
// mileage math is performed.
type ComponentStatusResponse struct {
	ComponentID        uint       `json:"component_id"`
	ComponentName      string     `json:"component_name"`
	Category           string     `json:"category"`
	Status             string     `json:"status"`
	RemainingYears     float64    `json:"remaining_years"`
	RemainingKM        int64      `json:"remaining_km"`
	ExpiryDate         *time.Time `json:"expiry_date,omitempty"`
	ProgressPercentage int        `json:"progress_percentage"`
	IsExpired          bool       `json:"is_expired"`
}

// VehicleInfoResponse is the vehicle summary embedded in warranty reports.
type VehicleInfoResponse struct {
	ID          uint   `json:"id"`
	ModelID     uint   `json:"model_id"`
	VIN         string `json:"vin,omitempty"`
	PlateNumber string `json:"plate_number,omitempty"`
	CurrentKM   int64  `json:"current_km"`
}

// VehicleWarrantyReportResponse is the aggregated per-vehicle warranty report.
type VehicleWarrantyReportResponse struct {
	Vehicle    VehicleInfoResponse       `json:"vehicle"`
	Components []ComponentStatusResponse `json:"components"`
}

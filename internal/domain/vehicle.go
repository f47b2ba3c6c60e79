package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Vehicle is a capacitated delivery vehicle tied to a single depot.
type Vehicle struct {
	ID          uuid.UUID `json:"id" db:"id"`
	DepotID     uuid.UUID `json:"depot_id" db:"depot_id"`
	CapacityKg  float64   `json:"capacity_kg" db:"capacity_kg"`
	DriverName  string    `json:"driver_name" db:"driver_name"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

var (
	ErrVehicleInvalidCapacity = errors.New("vehicle capacity must be positive")
	ErrVehicleNotFound        = errors.New("vehicle not found")
)

// NewVehicle creates a new vehicle with validation.
func NewVehicle(depotID uuid.UUID, capacityKg float64, driverName string) (*Vehicle, error) {
	if capacityKg <= 0 {
		return nil, ErrVehicleInvalidCapacity
	}

	now := time.Now()
	return &Vehicle{
		ID:         uuid.New(),
		DepotID:    depotID,
		CapacityKg: capacityKg,
		DriverName: driverName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Route is a solver output for a single vehicle on a single date.
type Route struct {
	ID              uuid.UUID `json:"id" db:"id"`
	VehicleID       uuid.UUID `json:"vehicle_id" db:"vehicle_id"`
	Date            string    `json:"date" db:"date"` // "YYYY-MM-DD"
	TotalDistanceKm float64   `json:"total_distance_km" db:"total_distance_km"`
	TotalTimeMin    float64   `json:"total_time_min" db:"total_time_min"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

var (
	ErrRouteInvalidDistance = errors.New("route total distance must be non-negative")
	ErrRouteInvalidTime     = errors.New("route total time must be non-negative")
	ErrRouteNotFound        = errors.New("route not found")
)

// NewRoute creates a new route record with validation.
func NewRoute(vehicleID uuid.UUID, date string, distanceKm, timeMin float64) (*Route, error) {
	if distanceKm < 0 {
		return nil, ErrRouteInvalidDistance
	}
	if timeMin < 0 {
		return nil, ErrRouteInvalidTime
	}

	return &Route{
		ID:              uuid.New(),
		VehicleID:       vehicleID,
		Date:            date,
		TotalDistanceKm: distanceKm,
		TotalTimeMin:    timeMin,
		CreatedAt:       time.Now(),
	}, nil
}

// RouteStop is the position of a stop within a route's ordered sequence.
type RouteStop struct {
	RouteID         uuid.UUID `json:"route_id" db:"route_id"`
	StopID          uuid.UUID `json:"stop_id" db:"stop_id"`
	Sequence        int       `json:"sequence" db:"sequence"`
	PlannedArrival  *string   `json:"planned_arrival,omitempty" db:"planned_arrival"`
	ActualArrival   *string   `json:"actual_arrival,omitempty" db:"actual_arrival"`
}

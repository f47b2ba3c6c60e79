// Package routing implements the CVRPTW solver: greedy nearest-neighbour
// construction followed by per-route 2-opt local search, plus the
// constraint predicates both phases share. None of it performs I/O.
package routing

import "github.com/saan-system/services/routing/internal/matrix"

// DispatchMinutes is the default dispatch time (08:00) used whenever a
// caller does not supply one.
const DispatchMinutes = 480.0

// StopRecord is the solver's internal view of a stop: its index into the
// distance/time matrices (depot is always 0) plus its capacity and
// time-window constraints. Not persisted.
type StopRecord struct {
	MatrixIndex int
	Weight      float64
	EarliestMin float64
	LatestMin   float64
}

// VehicleRecord is the solver's internal view of a vehicle. Not persisted.
type VehicleRecord struct {
	CapacityKg float64
	Driver     string
}

// Route is one vehicle's assigned, ordered stop sequence (indices into the
// StopRecord slice passed to Solve), plus its closed-loop distance.
type Route struct {
	VehicleIdx int
	StopOrder  []int // indices into the []StopRecord slice
	DistanceKm float64
}

// Score summarizes a solved set of routes.
type Score struct {
	TotalDistanceKm   float64 `json:"total_distance_km"`
	NumRoutes         int     `json:"num_routes"`
	AvgStopsPerRoute  float64 `json:"avg_stops_per_route"`
	Unassigned        int     `json:"unassigned"`
}

// Input bundles everything Solve needs.
type Input struct {
	Dist      *matrix.Matrix
	Time      *matrix.Matrix
	Stops     []StopRecord
	Vehicles  []VehicleRecord
	DepotIdx  int
	DispatchT float64 // minutes-since-midnight; 0 means "use DispatchMinutes"
}

func (in *Input) dispatchTime() float64 {
	if in.DispatchT > 0 {
		return in.DispatchT
	}
	return DispatchMinutes
}

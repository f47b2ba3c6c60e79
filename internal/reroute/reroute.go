// Package reroute recomputes ETAs for a persisted route's unchanged stop
// sequence after traffic events, without re-ordering stops or re-assigning
// vehicles.
package reroute

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/saan-system/services/routing/internal/domain"
	"github.com/saan-system/services/routing/internal/events"
	"github.com/saan-system/services/routing/internal/geo"
	"github.com/saan-system/services/routing/internal/matrix"
	"github.com/saan-system/services/routing/internal/store"
)

// dispatchMinutes is the fixed dispatch time the rerouter walks from,
// matching the solver's default.
const dispatchMinutes = 480.0

// defaultDelayFactor is applied when a caller's event doesn't name one.
const defaultDelayFactor = 1.5

// TrafficEvent multiplies the travel time of one matrix edge.
type TrafficEvent struct {
	FromIdx     int     `json:"from_idx"`
	ToIdx       int     `json:"to_idx"`
	DelayFactor float64 `json:"delay_factor"`
}

// StopETA is one stop's recomputed arrival.
type StopETA struct {
	StopID            uuid.UUID `json:"stop_id"`
	Sequence          int       `json:"sequence"`
	PlannedArrival    string    `json:"planned_arrival"`
	PlannedArrivalMin float64   `json:"planned_arrival_min"`
	Lat               float64   `json:"lat"`
	Lng               float64   `json:"lng"`
}

// Result is the rerouter's response.
type Result struct {
	RouteID   uuid.UUID `json:"route_id"`
	Rerouted  bool      `json:"rerouted"`
	Stops     []StopETA `json:"stops"`
}

// Rerouter recomputes ETAs for persisted routes. Publisher is optional; a
// nil Publisher skips event emission entirely.
type Rerouter struct {
	Depots    *store.DepotRepository
	Vehicles  *store.VehicleRepository
	Stops     *store.StopRepository
	Routes    *store.RouteRepository
	Provider  matrix.Provider
	Publisher events.Publisher
}

// Reroute implements C6: load the route, its vehicle, its depot, and its
// ordered stops; rebuild matrices; apply delay events; walk the unchanged
// sequence from dispatch; return new ETAs. It never reorders stops and never
// aborts on a time-window violation — that's surfaced in the ETA itself.
func (r *Rerouter) Reroute(ctx context.Context, routeID uuid.UUID, events []TrafficEvent) (Result, error) {
	route, err := r.Routes.GetByID(ctx, routeID)
	if err != nil {
		return Result{}, fmt.Errorf("load route: %w", err)
	}

	vehicle, err := r.Vehicles.GetByID(ctx, route.VehicleID)
	if err != nil {
		return Result{}, fmt.Errorf("load vehicle: %w", err)
	}

	depot, err := r.Depots.GetByID(ctx, vehicle.DepotID)
	if err != nil {
		return Result{}, fmt.Errorf("load depot: %w", err)
	}

	routeStops, err := r.Routes.GetStops(ctx, routeID)
	if err != nil {
		return Result{}, fmt.Errorf("load route stops: %w", err)
	}

	stopIDs := make([]uuid.UUID, len(routeStops))
	for i, rs := range routeStops {
		stopIDs[i] = rs.StopID
	}
	stops, err := r.Stops.GetByIDs(ctx, stopIDs)
	if err != nil {
		return Result{}, fmt.Errorf("load stops: %w", err)
	}
	byID := make(map[uuid.UUID]*domain.Stop, len(stops))
	for _, s := range stops {
		byID[s.ID] = s
	}

	coords := make([]geo.Coordinate, 0, len(routeStops)+1)
	coords = append(coords, geo.Coordinate{Lat: depot.Latitude, Lng: depot.Longitude})
	ordered := make([]*domain.Stop, len(routeStops))
	for i, rs := range routeStops {
		s, ok := byID[rs.StopID]
		if !ok {
			return Result{}, fmt.Errorf("route stop references unknown stop %s", rs.StopID)
		}
		ordered[i] = s
		coords = append(coords, geo.Coordinate{Lat: s.Latitude, Lng: s.Longitude})
	}

	_, tm, err := r.Provider.Build(ctx, coords)
	if err != nil {
		return Result{}, fmt.Errorf("build matrices: %w", err)
	}

	applyDelays(tm, events)

	etas := walk(ordered, tm, routeStops)

	if r.Publisher != nil {
		_ = r.Publisher.PublishRouteEvent(ctx, routeID.String(), "route.rerouted", map[string]interface{}{
			"route_id":       routeID.String(),
			"traffic_events": events,
		})
	}

	return Result{RouteID: routeID, Rerouted: true, Stops: etas}, nil
}

// applyDelays multiplies each event's matrix edge by its delay factor,
// defaulting to 1.5 and silently skipping any out-of-range edge.
func applyDelays(tm *matrix.Matrix, events []TrafficEvent) {
	for _, ev := range events {
		if ev.FromIdx < 0 || ev.FromIdx >= tm.N || ev.ToIdx < 0 || ev.ToIdx >= tm.N {
			continue
		}
		factor := ev.DelayFactor
		if factor <= 0 {
			factor = defaultDelayFactor
		}
		tm.Set(ev.FromIdx, ev.ToIdx, tm.At(ev.FromIdx, ev.ToIdx)*factor)
	}
}

// walk recomputes arrival at each stop in its existing, unchanged order.
func walk(ordered []*domain.Stop, tm *matrix.Matrix, routeStops []domain.RouteStop) []StopETA {
	etas := make([]StopETA, len(ordered))
	t := dispatchMinutes
	p := 0

	for i, s := range ordered {
		matrixIdx := i + 1
		arrival := t + tm.At(p, matrixIdx)
		etas[i] = StopETA{
			StopID:            s.ID,
			Sequence:          routeStops[i].Sequence,
			PlannedArrival:    domain.MinutesToHHMM(arrival),
			PlannedArrivalMin: round1(arrival),
			Lat:               s.Latitude,
			Lng:               s.Longitude,
		}
		t = max(arrival, s.EarliestMinutes())
		p = matrixIdx
	}

	return etas
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

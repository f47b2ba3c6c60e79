package jobs

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/saan-system/services/routing/internal/domain"
	"github.com/saan-system/services/routing/internal/events"
	"github.com/saan-system/services/routing/internal/geo"
	"github.com/saan-system/services/routing/internal/matrix"
	"github.com/saan-system/services/routing/internal/routing"
	"github.com/saan-system/services/routing/internal/store"
)

// Pipeline bundles everything one optimisation job needs: the repositories
// to load a scenario and persist its result, and the matrix provider to
// build the distance/time matrices. Every job commits independently —
// there is no shared persistence session across jobs. Publisher is optional;
// a nil Publisher skips event emission entirely.
type Pipeline struct {
	Depots    *store.DepotRepository
	Vehicles  *store.VehicleRepository
	Stops     *store.StopRepository
	Routes    *store.RouteRepository
	Provider  matrix.Provider
	Publisher events.Publisher
}

// Run executes the full job pipeline described by the spec: load depot,
// vehicles, and stops; build matrices; solve; benchmark the greedy-only
// distance for telemetry; persist; and return the summarized result.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	depot, err := p.Depots.GetByID(ctx, req.DepotID)
	if err != nil {
		return Result{}, fmt.Errorf("load depot: %w", err)
	}

	vehicles := make([]*domain.Vehicle, 0, len(req.VehicleIDs))
	for _, id := range req.VehicleIDs {
		v, err := p.Vehicles.GetByID(ctx, id)
		if err != nil {
			return Result{}, fmt.Errorf("load vehicle %s: %w", id, err)
		}
		vehicles = append(vehicles, v)
	}

	fetched, err := p.Stops.GetByIDs(ctx, req.StopIDs)
	if err != nil {
		return Result{}, fmt.Errorf("load stops: %w", err)
	}
	if len(fetched) != len(req.StopIDs) {
		return Result{}, fmt.Errorf("one or more stop ids not found")
	}
	byID := make(map[uuid.UUID]*domain.Stop, len(fetched))
	for _, s := range fetched {
		byID[s.ID] = s
	}
	stops := make([]*domain.Stop, len(req.StopIDs))
	for i, id := range req.StopIDs {
		s, ok := byID[id]
		if !ok {
			return Result{}, fmt.Errorf("one or more stop ids not found")
		}
		stops[i] = s
	}

	coords := make([]geo.Coordinate, 0, len(stops)+1)
	coords = append(coords, geo.Coordinate{Lat: depot.Latitude, Lng: depot.Longitude})
	for _, s := range stops {
		coords = append(coords, geo.Coordinate{Lat: s.Latitude, Lng: s.Longitude})
	}

	dist, tm, err := p.Provider.Build(ctx, coords)
	if err != nil {
		return Result{}, fmt.Errorf("build matrices: %w", err)
	}

	stopRecords := make([]routing.StopRecord, len(stops))
	for i, s := range stops {
		stopRecords[i] = routing.StopRecord{
			MatrixIndex: i + 1,
			Weight:      s.WeightKg,
			EarliestMin: s.EarliestMinutes(),
			LatestMin:   s.LatestMinutes(),
		}
	}

	vehicleRecords := make([]routing.VehicleRecord, len(vehicles))
	vehicleIDs := make([]uuid.UUID, len(vehicles))
	for i, v := range vehicles {
		vehicleRecords[i] = routing.VehicleRecord{CapacityKg: v.CapacityKg, Driver: v.DriverName}
		vehicleIDs[i] = v.ID
	}

	in := &routing.Input{
		Dist:     dist,
		Time:     tm,
		Stops:    stopRecords,
		Vehicles: vehicleRecords,
		DepotIdx: 0,
	}

	greedyTotal := greedyOnlyDistance(in)
	solved := routing.Solve(in)
	score := routing.ScoreRoutes(solved, len(stopRecords))

	routeIDs, err := p.persist(ctx, solved, stopRecords, stops, vehicleIDs, req.Date, tm)
	if err != nil {
		return Result{}, fmt.Errorf("persist routes: %w", err)
	}

	p.publishOptimized(ctx, routeIDs, score.TotalDistanceKm)

	return Result{
		RouteIDs:         routeIDs,
		TotalDistanceKm:  score.TotalDistanceKm,
		GreedyDistanceKm: greedyTotal,
		ImprovementPct:   improvementPct(greedyTotal, score.TotalDistanceKm),
		NumRoutes:        score.NumRoutes,
		Score:            score,
	}, nil
}

// persist writes one Route + its RouteStops per solved route, returning the
// new route identifiers in solve order.
func (p *Pipeline) persist(ctx context.Context, solved []routing.Route, stopRecords []routing.StopRecord, stops []*domain.Stop, vehicleIDs []uuid.UUID, date string, tm *matrix.Matrix) ([]uuid.UUID, error) {
	routeIDs := make([]uuid.UUID, 0, len(solved))

	for _, r := range solved {
		timeMin := routing.RouteTimeMinutes(r, stopRecords, tm, 0)
		route, err := domain.NewRoute(vehicleIDs[r.VehicleIdx], date, r.DistanceKm, timeMin)
		if err != nil {
			return nil, err
		}

		routeStops := make([]domain.RouteStop, len(r.StopOrder))
		for seq, idx := range r.StopOrder {
			routeStops[seq] = domain.RouteStop{
				RouteID:  route.ID,
				StopID:   stops[idx].ID,
				Sequence: seq,
			}
		}

		if err := p.Routes.CreateWithStops(ctx, route, routeStops); err != nil {
			return nil, err
		}

		routeIDs = append(routeIDs, route.ID)
	}

	return routeIDs, nil
}

// publishOptimized emits one event per newly created route. A publish
// failure never fails the job — the route is already persisted and
// queryable, so a dropped event only costs a downstream subscriber its
// notification, not the optimisation result itself.
func (p *Pipeline) publishOptimized(ctx context.Context, routeIDs []uuid.UUID, totalDistanceKm float64) {
	if p.Publisher == nil {
		return
	}
	for _, id := range routeIDs {
		_ = p.Publisher.PublishRouteEvent(ctx, id.String(), "route.optimized", map[string]interface{}{
			"route_id":          id.String(),
			"total_distance_km": totalDistanceKm,
		})
	}
}

// greedyOnlyDistance runs construction without the 2-opt pass, purely to
// report the improvement the local search delivered.
func greedyOnlyDistance(in *routing.Input) float64 {
	var total float64
	for _, r := range routing.ConstructGreedy(in) {
		total += r.DistanceKm
	}
	return total
}

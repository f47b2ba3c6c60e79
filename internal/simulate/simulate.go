// Package simulate generates structurally valid scenario data for the
// /simulation endpoints: a depot and stops scattered around a named city's
// centroid, and vehicles with randomized capacities. It makes no claim to
// statistical realism — that's explicitly out of scope — it only needs to
// produce inputs the rest of the system can act on.
package simulate

import (
	"fmt"
	"math/rand"

	"github.com/saan-system/services/routing/internal/domain"
)

// cityCentroid is a small built-in city name to (lat, lng) table.
var cityCentroid = map[string]struct{ Lat, Lng float64 }{
	"bangkok":   {13.7563, 100.5018},
	"seattle":   {47.6062, -122.3321},
	"chiangmai": {18.7883, 98.9853},
	"tokyo":     {35.6762, 139.6503},
}

// defaultCentroid is used for any city name not in the table, so the
// generator never fails just because it doesn't recognise a name.
var defaultCentroid = struct{ Lat, Lng float64 }{13.7563, 100.5018}

// spreadDegrees bounds how far a generated stop can land from the city
// centroid — roughly a 5km-radius metro area at these latitudes.
const spreadDegrees = 0.045

// Request is the input to Start.
type Request struct {
	City        string
	NumStops    int
	NumVehicles int
	Seed        int64
}

// Scenario is a freshly generated, not-yet-persisted depot/vehicles/stops
// triple, ready for the caller to persist and feed to the optimize endpoint.
type Scenario struct {
	Depot    *domain.Depot
	Vehicles []*domain.Vehicle
	Stops    []*domain.Stop
}

// Start builds a random scenario. Seed makes the layout reproducible for a
// given request; callers that omit it get a fresh spread each call.
func Start(req Request) (*Scenario, error) {
	centroid, ok := cityCentroid[req.City]
	if !ok {
		centroid = defaultCentroid
	}

	rng := rand.New(rand.NewSource(req.Seed))

	depot, err := domain.NewDepot(fmt.Sprintf("%s depot", req.City), centroid.Lat, centroid.Lng, "08:00", "20:00")
	if err != nil {
		return nil, fmt.Errorf("generate depot: %w", err)
	}

	vehicles := make([]*domain.Vehicle, req.NumVehicles)
	for i := 0; i < req.NumVehicles; i++ {
		capacityKg := 50.0 + rng.Float64()*150.0
		v, err := domain.NewVehicle(depot.ID, capacityKg, fmt.Sprintf("driver-%d", i+1))
		if err != nil {
			return nil, fmt.Errorf("generate vehicle: %w", err)
		}
		vehicles[i] = v
	}

	stops := make([]*domain.Stop, req.NumStops)
	for i := 0; i < req.NumStops; i++ {
		lat := centroid.Lat + (rng.Float64()*2-1)*spreadDegrees
		lng := centroid.Lng + (rng.Float64()*2-1)*spreadDegrees
		earliest, latest := randomWindow(rng)
		weightKg := 1.0 + rng.Float64()*29.0

		s, err := domain.NewStop(fmt.Sprintf("%s stop %d", req.City, i+1), lat, lng, earliest, latest, weightKg)
		if err != nil {
			return nil, fmt.Errorf("generate stop: %w", err)
		}
		stops[i] = s
	}

	return &Scenario{Depot: depot, Vehicles: vehicles, Stops: stops}, nil
}

// randomWindow picks a 2-to-4-hour delivery window inside the 08:00-20:00
// operating day.
func randomWindow(rng *rand.Rand) (earliest, latest string) {
	startHour := 8 + rng.Intn(8) // 08:00 .. 15:00
	windowHours := 2 + rng.Intn(3)
	endHour := startHour + windowHours
	if endHour > 20 {
		endHour = 20
	}
	return fmt.Sprintf("%02d:00", startHour), fmt.Sprintf("%02d:00", endHour)
}

// InjectTraffic proposes a delay event against a random edge of a route
// with n stops (n+1 matrix positions including the depot).
func InjectTraffic(numMatrixPositions int, delayFactor float64, seed int64) (fromIdx, toIdx int, factor float64) {
	rng := rand.New(rand.NewSource(seed))
	if numMatrixPositions < 2 {
		return 0, 0, delayFactor
	}
	from := rng.Intn(numMatrixPositions)
	to := rng.Intn(numMatrixPositions)
	for to == from {
		to = rng.Intn(numMatrixPositions)
	}
	if delayFactor <= 0 {
		delayFactor = 1.5
	}
	return from, to, delayFactor
}

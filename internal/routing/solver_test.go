package routing

import (
	"math"
	"testing"

	"github.com/saan-system/services/routing/internal/matrix"
)

// linearMatrix builds the 5-node matrix from the spec's linear scenario:
// depot at index 0, stops 1..4 spaced one unit apart on a line.
func linearMatrix() *matrix.Matrix {
	raw := [5][5]float64{
		{0, 1, 2, 3, 4},
		{1, 0, 1, 2, 3},
		{2, 1, 0, 1, 2},
		{3, 2, 1, 0, 1},
		{4, 3, 2, 1, 0},
	}
	m := matrix.NewMatrix(5)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			m.Set(i, j, raw[i][j])
		}
	}
	return m
}

func linearStops() []StopRecord {
	stops := make([]StopRecord, 4)
	for i := range stops {
		stops[i] = StopRecord{
			MatrixIndex: i + 1,
			Weight:      10,
			EarliestMin: 480,
			LatestMin:   840,
		}
	}
	return stops
}

func TestSolve_LinearFiveNodeSingleVehicle(t *testing.T) {
	dm := linearMatrix()
	in := &Input{
		Dist:     dm,
		Time:     dm,
		Stops:    linearStops(),
		Vehicles: []VehicleRecord{{CapacityKg: 500, Driver: "solo"}},
		DepotIdx: 0,
	}

	routes := Solve(in)
	if len(routes) != 1 {
		t.Fatalf("want 1 route, got %d", len(routes))
	}
	if len(routes[0].StopOrder) != 4 {
		t.Fatalf("want 4 stops assigned, got %d", len(routes[0].StopOrder))
	}

	score := ScoreRoutes(routes, len(in.Stops))
	if score.Unassigned != 0 {
		t.Fatalf("want 0 unassigned, got %d", score.Unassigned)
	}
	if math.Abs(score.TotalDistanceKm-8.0) > 1e-6 {
		t.Fatalf("want total distance 8.0, got %v", score.TotalDistanceKm)
	}
}

func TestSolve_OverCapacitySingleton(t *testing.T) {
	dm := matrix.NewMatrix(2)
	dm.Set(0, 1, 1)
	dm.Set(1, 0, 1)

	in := &Input{
		Dist:  dm,
		Time:  dm,
		Stops: []StopRecord{{MatrixIndex: 1, Weight: 110, EarliestMin: 0, LatestMin: 1440}},
		Vehicles: []VehicleRecord{
			{CapacityKg: 100, Driver: "solo"},
		},
		DepotIdx: 0,
	}

	routes := Solve(in)
	if len(routes) != 0 {
		t.Fatalf("want no routes, got %d", len(routes))
	}
	score := ScoreRoutes(routes, len(in.Stops))
	if score.Unassigned != 1 {
		t.Fatalf("want 1 unassigned, got %d", score.Unassigned)
	}
}

func TestSolve_ImpossibleWindow(t *testing.T) {
	dm := matrix.NewMatrix(2)
	dm.Set(0, 1, 1)
	dm.Set(1, 0, 1)

	in := &Input{
		Dist:      dm,
		Time:      dm,
		Stops:     []StopRecord{{MatrixIndex: 1, Weight: 5, EarliestMin: 0, LatestMin: 480}},
		Vehicles:  []VehicleRecord{{CapacityKg: 100, Driver: "solo"}},
		DepotIdx:  0,
		DispatchT: 480,
	}

	routes := Solve(in)
	if len(routes) != 0 {
		t.Fatalf("want no routes produced (481 > 480), got %d", len(routes))
	}
}

func TestTwoOpt_RepairsBadOrdering(t *testing.T) {
	dm := linearMatrix()
	stops := linearStops()
	in := &Input{
		Dist:     dm,
		Time:     dm,
		Stops:    stops,
		Vehicles: []VehicleRecord{{CapacityKg: 500, Driver: "solo"}},
		DepotIdx: 0,
	}

	bad := []int{3, 0, 2, 1} // stop-list indices, i.e. matrix indices 4,1,3,2
	badDist := routeDist(bad, stops, dm, 0)

	repaired := twoOpt(Route{VehicleIdx: 0, StopOrder: bad, DistanceKm: badDist}, in)

	if repaired.DistanceKm > badDist+1e-9 {
		t.Fatalf("2-opt made things worse: %v > %v", repaired.DistanceKm, badDist)
	}
}

func TestSolve_TwoOptNeverWorsensGreedy(t *testing.T) {
	dm := linearMatrix()
	in := &Input{
		Dist:     dm,
		Time:     dm,
		Stops:    linearStops(),
		Vehicles: []VehicleRecord{{CapacityKg: 500, Driver: "solo"}},
		DepotIdx: 0,
	}

	greedy := construct(in)
	var greedyTotal float64
	for _, r := range greedy {
		greedyTotal += r.DistanceKm
	}

	solved := Solve(in)
	var solvedTotal float64
	for _, r := range solved {
		solvedTotal += r.DistanceKm
	}

	if solvedTotal > greedyTotal+1e-6 {
		t.Fatalf("solve() total %v exceeds greedy total %v", solvedTotal, greedyTotal)
	}
}

func TestSolve_CapacityAndWindowsRespected(t *testing.T) {
	dm := linearMatrix()
	in := &Input{
		Dist:     dm,
		Time:     dm,
		Stops:    linearStops(),
		Vehicles: []VehicleRecord{{CapacityKg: 25, Driver: "solo"}, {CapacityKg: 25, Driver: "backup"}},
		DepotIdx: 0,
	}

	routes := Solve(in)
	for _, r := range routes {
		veh := in.Vehicles[r.VehicleIdx]
		var load float64
		for _, idx := range r.StopOrder {
			load += in.Stops[idx].Weight
		}
		if load > veh.CapacityKg {
			t.Fatalf("route exceeds capacity: load %v > cap %v", load, veh.CapacityKg)
		}

		ok, arrivals := ValidateRoute(r.StopOrder, in.Stops, veh.CapacityKg, in.Time, in.DepotIdx, in.dispatchTime())
		if !ok {
			t.Fatalf("solved route failed re-validation")
		}
		for i, idx := range r.StopOrder {
			if arrivals[i] > in.Stops[idx].LatestMin {
				t.Fatalf("stop %d arrival %v exceeds latest %v", idx, arrivals[i], in.Stops[idx].LatestMin)
			}
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	dm := linearMatrix()
	newInput := func() *Input {
		return &Input{
			Dist:     dm,
			Time:     dm,
			Stops:    linearStops(),
			Vehicles: []VehicleRecord{{CapacityKg: 500, Driver: "solo"}},
			DepotIdx: 0,
		}
	}

	first := Solve(newInput())
	second := Solve(newInput())

	if len(first) != len(second) {
		t.Fatalf("route count differs across runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if len(first[i].StopOrder) != len(second[i].StopOrder) {
			t.Fatalf("route %d stop count differs across runs", i)
		}
		for j := range first[i].StopOrder {
			if first[i].StopOrder[j] != second[i].StopOrder[j] {
				t.Fatalf("route %d order differs at position %d across runs", i, j)
			}
		}
	}
}

package routing

import "github.com/saan-system/services/routing/internal/matrix"

// CapacityOK reports whether the summed stop weights fit the vehicle's
// capacity.
func CapacityOK(weights []float64, capacityKg float64) bool {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	return sum <= capacityKg
}

// WindowOK reports whether arrival falls within [earliest, latest],
// endpoints inclusive.
func WindowOK(arrivalMin, earliestMin, latestMin float64) bool {
	return arrivalMin >= earliestMin && arrivalMin <= latestMin
}

// ValidateRoute walks an ordered stop sequence from the depot at dispatch
// time t0, checking capacity up front and then time windows stop by stop.
// It returns the raw arrival (pre-wait) at each stop, which is what display
// layers render; the depot-return leg is not checked against any window.
func ValidateRoute(order []int, stops []StopRecord, capacityKg float64, tm *matrix.Matrix, depotIdx int, t0 float64) (bool, []float64) {
	weights := make([]float64, len(order))
	for i, idx := range order {
		weights[i] = stops[idx].Weight
	}
	if !CapacityOK(weights, capacityKg) {
		return false, nil
	}

	arrivals := make([]float64, 0, len(order))
	t := t0
	p := depotIdx

	for _, idx := range order {
		s := stops[idx]
		arrival := t + tm.At(p, s.MatrixIndex)
		if arrival > s.LatestMin {
			return false, nil
		}
		arrivals = append(arrivals, arrival)
		t = max(arrival, s.EarliestMin)
		p = s.MatrixIndex
	}

	return true, arrivals
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

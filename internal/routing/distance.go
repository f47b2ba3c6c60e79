package routing

import "github.com/saan-system/services/routing/internal/matrix"

// routeDist computes the closed-loop depot -> stops -> depot distance for an
// ordering of stop indices. An empty route costs 0.
func routeDist(order []int, stops []StopRecord, dist *matrix.Matrix, depotIdx int) float64 {
	if len(order) == 0 {
		return 0
	}

	total := dist.At(depotIdx, stops[order[0]].MatrixIndex)
	for k := 0; k < len(order)-1; k++ {
		total += dist.At(stops[order[k]].MatrixIndex, stops[order[k+1]].MatrixIndex)
	}
	total += dist.At(stops[order[len(order)-1]].MatrixIndex, depotIdx)

	return total
}

// RouteTimeMinutes computes the closed-loop depot -> stops -> depot travel
// time for a solved route, for callers (the job pipeline) that need total
// time alongside the distance already carried on Route.DistanceKm.
func RouteTimeMinutes(r Route, stops []StopRecord, tm *matrix.Matrix, depotIdx int) float64 {
	return routeDist(r.StopOrder, stops, tm, depotIdx)
}

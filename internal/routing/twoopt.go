package routing

// epsilon is the minimum distance improvement a 2-opt move must deliver to
// be accepted; guards against churning on floating-point noise.
const epsilon = 1e-6

// twoOpt runs first-improvement 2-opt local search on a single route: it
// reverses the stop segment between each candidate pair, keeps the move only
// if it both shortens the route by more than epsilon and stays feasible
// (capacity is order-independent and already known to hold; time windows are
// re-checked since reversal changes arrival times), and restarts the scan
// from the top after every accepted move. Distance is strictly decreasing
// across accepted moves, so this always terminates.
func twoOpt(r Route, in *Input) Route {
	veh := in.Vehicles[r.VehicleIdx]

	improved := true
	for improved {
		improved = false
		n := len(r.StopOrder)

		for i := 0; i < n-1 && !improved; i++ {
			for j := i + 1; j < n && !improved; j++ {
				candidate := reversedSegment(r.StopOrder, i, j)
				newDist := routeDist(candidate, in.Stops, in.Dist, in.DepotIdx)

				if r.DistanceKm-newDist <= epsilon {
					continue
				}

				ok, _ := ValidateRoute(candidate, in.Stops, veh.CapacityKg, in.Time, in.DepotIdx, in.dispatchTime())
				if !ok {
					continue
				}

				r.StopOrder = candidate
				r.DistanceKm = newDist
				improved = true
			}
		}
	}

	return r
}

// reversedSegment returns a copy of order with the [i, j] slice reversed.
func reversedSegment(order []int, i, j int) []int {
	out := make([]int, len(order))
	copy(out, order)
	for lo, hi := i, j; lo < hi; lo, hi = lo+1, hi-1 {
		out[lo], out[hi] = out[hi], out[lo]
	}
	return out
}

package routing

// Solve runs the two-phase heuristic: greedy nearest-neighbour construction
// followed by per-route 2-opt improvement. Stops that no vehicle can serve
// feasibly are left unassigned rather than forcing an infeasible route —
// infeasibility is surfaced through Score.Unassigned, never as an error.
func Solve(in *Input) []Route {
	routes := construct(in)
	for i := range routes {
		routes[i] = twoOpt(routes[i], in)
	}
	return routes
}

// ConstructGreedy runs Phase 1 alone, with no 2-opt improvement. The job
// pipeline uses this to report the greedy baseline distance alongside the
// solved result.
func ConstructGreedy(in *Input) []Route {
	return construct(in)
}

// construct runs Phase 1: for each vehicle in input order, repeatedly pick
// the nearest still-unassigned, still-feasible stop until none remains, then
// move to the next vehicle. Ties (equal distance) resolve to whichever
// candidate was encountered first in stop order, matching the deterministic
// scan below.
func construct(in *Input) []Route {
	t0 := in.dispatchTime()
	unassigned := make([]bool, len(in.Stops))
	for i := range unassigned {
		unassigned[i] = true
	}

	routes := make([]Route, 0, len(in.Vehicles))

	for vIdx, veh := range in.Vehicles {
		order := make([]int, 0)
		load := 0.0
		t := t0
		pos := in.DepotIdx

		for {
			best := -1
			bestDist := 0.0

			for si, avail := range unassigned {
				if !avail {
					continue
				}
				stop := in.Stops[si]

				if load+stop.Weight > veh.CapacityKg {
					continue
				}

				arrival := t + in.Time.At(pos, stop.MatrixIndex)
				if arrival > stop.LatestMin {
					continue
				}

				d := in.Dist.At(pos, stop.MatrixIndex)
				if best == -1 || d < bestDist {
					best = si
					bestDist = d
				}
			}

			if best == -1 {
				break
			}

			stop := in.Stops[best]
			arrival := t + in.Time.At(pos, stop.MatrixIndex)
			unassigned[best] = false
			order = append(order, best)
			load += stop.Weight
			t = max(arrival, stop.EarliestMin)
			pos = stop.MatrixIndex
		}

		if len(order) == 0 {
			continue
		}

		routes = append(routes, Route{
			VehicleIdx: vIdx,
			StopOrder:  order,
			DistanceKm: routeDist(order, in.Stops, in.Dist, in.DepotIdx),
		})
	}

	return routes
}

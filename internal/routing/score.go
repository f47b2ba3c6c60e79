package routing

import "math"

// ScoreRoutes aggregates a solved set of routes against the original stop
// count, reporting how many stops no vehicle could serve.
func ScoreRoutes(routes []Route, totalStops int) Score {
	var totalDist float64
	var servedStops int

	for _, r := range routes {
		totalDist += r.DistanceKm
		servedStops += len(r.StopOrder)
	}

	avg := 0.0
	if len(routes) > 0 {
		avg = float64(servedStops) / float64(len(routes))
	}

	return Score{
		TotalDistanceKm:  round(totalDist, 3),
		NumRoutes:        len(routes),
		AvgStopsPerRoute: round(avg, 1),
		Unassigned:       totalStops - servedStops,
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

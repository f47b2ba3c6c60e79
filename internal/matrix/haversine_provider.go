package matrix

import (
	"context"

	"github.com/saan-system/services/routing/internal/geo"
)

// HaversineProvider is the zero-dependency fallback: it never fails and
// never performs I/O.
type HaversineProvider struct {
	AvgSpeedKmh float64
}

// NewHaversineProvider creates a fallback provider with the default average
// speed used to convert distance into travel time.
func NewHaversineProvider() *HaversineProvider {
	return &HaversineProvider{AvgSpeedKmh: 30}
}

// Build computes a symmetric great-circle distance matrix and a
// proportional travel-time matrix.
func (p *HaversineProvider) Build(_ context.Context, coords []geo.Coordinate) (*Matrix, *Matrix, error) {
	n := len(coords)
	dist := NewMatrix(n)
	tm := NewMatrix(n)

	speed := p.AvgSpeedKmh
	if speed <= 0 {
		speed = 30
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d := geo.HaversineKm(coords[i], coords[j])
			dist.Set(i, j, d)
			tm.Set(i, j, d/speed*60)
		}
	}

	return dist, tm, nil
}

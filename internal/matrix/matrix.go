// Package matrix builds the N×N distance/time matrices the solver operates
// over. Index 0 is always the depot; indices 1..n are stops in input order.
package matrix

import (
	"context"

	"github.com/saan-system/services/routing/internal/geo"
)

// Matrix is a flat, row-major N×N buffer. Storing matrices this way (rather
// than [][]float64) keeps the 2-opt inner loop's hot reads cache-friendly.
type Matrix struct {
	N    int
	data []float64
}

// NewMatrix allocates a zeroed N×N matrix.
func NewMatrix(n int) *Matrix {
	return &Matrix{N: n, data: make([]float64, n*n)}
}

// At returns the value at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.N+j]
}

// Set stores the value at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.N+j] = v
}

// Provider builds a distance (km) and time (min) matrix for a coordinate
// list, index 0 being the depot.
type Provider interface {
	Build(ctx context.Context, coords []geo.Coordinate) (dist *Matrix, time *Matrix, err error)
}

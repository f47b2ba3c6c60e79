package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm_SamePointIsZero(t *testing.T) {
	p := Coordinate{Lat: 47.6062, Lng: -122.3321}
	assert.Zero(t, HaversineKm(p, p))
}

func TestHaversineKm_Symmetric(t *testing.T) {
	a := Coordinate{Lat: 47.6062, Lng: -122.3321}
	b := Coordinate{Lat: 13.7563, Lng: 100.5018}
	assert.InDelta(t, HaversineKm(a, b), HaversineKm(b, a), 1e-9)
}

func TestHaversineKm_SeattleShortHop(t *testing.T) {
	a := Coordinate{Lat: 47.6062, Lng: -122.3321}
	b := Coordinate{Lat: 47.6242, Lng: -122.3321}
	d := HaversineKm(a, b)
	assert.GreaterOrEqual(t, d, 1.8)
	assert.LessOrEqual(t, d, 2.2)
}

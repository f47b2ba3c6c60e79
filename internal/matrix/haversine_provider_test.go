package matrix

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saan-system/services/routing/internal/geo"
)

func TestHaversineProvider_ZeroDiagonal(t *testing.T) {
	coords := []geo.Coordinate{
		{Lat: 47.6062, Lng: -122.3321},
		{Lat: 47.6242, Lng: -122.3321},
		{Lat: 47.5, Lng: -122.4},
	}

	dist, tm, err := NewHaversineProvider().Build(context.Background(), coords)
	require.NoError(t, err)

	for i := 0; i < len(coords); i++ {
		assert.Zero(t, dist.At(i, i))
		assert.Zero(t, tm.At(i, i))
	}
}

func TestHaversineProvider_Symmetric(t *testing.T) {
	coords := []geo.Coordinate{
		{Lat: 47.6062, Lng: -122.3321},
		{Lat: 13.7563, Lng: 100.5018},
	}

	dist, _, err := NewHaversineProvider().Build(context.Background(), coords)
	require.NoError(t, err)

	assert.InDelta(t, dist.At(0, 1), dist.At(1, 0), 1e-9)
}

func TestHaversineProvider_TimeProportionalToDistance(t *testing.T) {
	coords := []geo.Coordinate{
		{Lat: 47.6062, Lng: -122.3321},
		{Lat: 47.6242, Lng: -122.3321},
	}

	p := NewHaversineProvider()
	dist, tm, err := p.Build(context.Background(), coords)
	require.NoError(t, err)

	want := dist.At(0, 1) / p.AvgSpeedKmh * 60
	assert.InEpsilon(t, want, tm.At(0, 1), 1e-6)
}

func TestHaversineProvider_SeattleContractShape(t *testing.T) {
	coords := []geo.Coordinate{
		{Lat: 47.6062, Lng: -122.3321},
		{Lat: 47.6242, Lng: -122.3321},
	}

	dist, _, err := NewHaversineProvider().Build(context.Background(), coords)
	require.NoError(t, err)

	d := dist.At(0, 1)
	assert.GreaterOrEqual(t, d, 1.8)
	assert.LessOrEqual(t, d, 2.2)
}

func TestHaversineProvider_DefaultsSpeedWhenNonPositive(t *testing.T) {
	p := &HaversineProvider{AvgSpeedKmh: 0}
	coords := []geo.Coordinate{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 0}}
	_, tm, err := p.Build(context.Background(), coords)
	require.NoError(t, err)
	assert.NotZero(t, tm.At(0, 1))
}

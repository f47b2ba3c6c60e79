package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	vehicleID := uuid.New()

	r, err := NewRoute(vehicleID, "2026-07-31", 8.0, 45.0)
	require.NoError(t, err)
	assert.Equal(t, vehicleID, r.VehicleID)
	assert.Equal(t, 8.0, r.TotalDistanceKm)

	_, err = NewRoute(vehicleID, "2026-07-31", -1, 45.0)
	assert.ErrorIs(t, err, ErrRouteInvalidDistance)

	_, err = NewRoute(vehicleID, "2026-07-31", 8.0, -1)
	assert.ErrorIs(t, err, ErrRouteInvalidTime)
}

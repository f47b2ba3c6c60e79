package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle(t *testing.T) {
	depotID := uuid.New()

	v, err := NewVehicle(depotID, 500, "Somchai")
	require.NoError(t, err)
	assert.Equal(t, depotID, v.DepotID)
	assert.Equal(t, 500.0, v.CapacityKg)

	_, err = NewVehicle(depotID, 0, "Somchai")
	assert.ErrorIs(t, err, ErrVehicleInvalidCapacity)

	_, err = NewVehicle(depotID, -10, "Somchai")
	assert.ErrorIs(t, err, ErrVehicleInvalidCapacity)
}

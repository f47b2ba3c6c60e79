package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDepot(t *testing.T) {
	tests := []struct {
		name        string
		depotName   string
		openTime    string
		closeTime   string
		expectError error
	}{
		{name: "valid depot", depotName: "Central", openTime: "06:00", closeTime: "20:00"},
		{name: "empty name", depotName: "", openTime: "06:00", closeTime: "20:00", expectError: ErrDepotInvalidName},
		{name: "open after close", depotName: "Central", openTime: "20:00", closeTime: "06:00", expectError: ErrDepotInvalidWindow},
		{name: "open equals close", depotName: "Central", openTime: "08:00", closeTime: "08:00", expectError: ErrDepotInvalidWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDepot(tt.depotName, 13.75, 100.50, tt.openTime, tt.closeTime)
			if tt.expectError != nil {
				require.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, d)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, d)
			assert.NotEqual(t, d.ID.String(), "")
		})
	}
}

func TestNewDepot_PropagatesTimeParseError(t *testing.T) {
	_, err := NewDepot("Central", 0, 0, "not-a-time", "20:00")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

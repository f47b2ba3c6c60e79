package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStop(t *testing.T) {
	tests := []struct {
		name        string
		weightKg    float64
		earliest    string
		latest      string
		expectError error
	}{
		{name: "valid stop", weightKg: 10, earliest: "08:00", latest: "14:00"},
		{name: "zero weight", weightKg: 0, earliest: "08:00", latest: "14:00", expectError: ErrStopInvalidWeight},
		{name: "negative weight", weightKg: -5, earliest: "08:00", latest: "14:00", expectError: ErrStopInvalidWeight},
		{name: "earliest after latest", weightKg: 10, earliest: "15:00", latest: "14:00", expectError: ErrStopInvalidWindow},
		{name: "earliest equals latest is allowed", weightKg: 10, earliest: "14:00", latest: "14:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStop("123 Sukhumvit Rd", 13.75, 100.5, tt.earliest, tt.latest, tt.weightKg)
			if tt.expectError != nil {
				require.ErrorIs(t, err, tt.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StopStatusPending, s.Status)
		})
	}
}

func TestStop_MinutesAccessorsAndTransitions(t *testing.T) {
	s, err := NewStop("123 Sukhumvit Rd", 13.75, 100.5, "08:00", "14:00", 10)
	require.NoError(t, err)

	assert.Equal(t, 480.0, s.EarliestMinutes())
	assert.Equal(t, 840.0, s.LatestMinutes())

	s.MarkInRoute()
	assert.Equal(t, StopStatusInRoute, s.Status)

	s.MarkDelivered()
	assert.Equal(t, StopStatusDelivered, s.Status)

	s.MarkFailed()
	assert.Equal(t, StopStatusFailed, s.Status)
}

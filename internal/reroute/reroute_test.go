package reroute

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saan-system/services/routing/internal/domain"
	"github.com/saan-system/services/routing/internal/matrix"
)

func TestApplyDelays_DefaultsAndBoundsCheck(t *testing.T) {
	tm := matrix.NewMatrix(3)
	tm.Set(0, 1, 10)
	tm.Set(1, 2, 10)

	applyDelays(tm, []TrafficEvent{
		{FromIdx: 0, ToIdx: 1, DelayFactor: 2.0},
		{FromIdx: 1, ToIdx: 2}, // zero factor -> default 1.5
		{FromIdx: 5, ToIdx: 1, DelayFactor: 3.0}, // out of range, skipped
		{FromIdx: 1, ToIdx: -1, DelayFactor: 3.0}, // out of range, skipped
	})

	assert.Equal(t, 20.0, tm.At(0, 1))
	assert.Equal(t, 15.0, tm.At(1, 2))
}

func TestWalk_PreservesOrderAndComputesArrivals(t *testing.T) {
	tm := matrix.NewMatrix(3)
	tm.Set(0, 1, 10)
	tm.Set(1, 2, 10)

	s1, err := domain.NewStop("A", 0, 0, "06:00", "23:00", 1)
	require.NoError(t, err)
	s2, err := domain.NewStop("B", 0, 0, "06:00", "23:00", 1)
	require.NoError(t, err)

	routeStops := []domain.RouteStop{
		{RouteID: uuid.New(), StopID: s1.ID, Sequence: 0},
		{RouteID: uuid.New(), StopID: s2.ID, Sequence: 1},
	}

	etas := walk([]*domain.Stop{s1, s2}, tm, routeStops)

	require.Len(t, etas, 2)
	assert.Equal(t, s1.ID, etas[0].StopID)
	assert.Equal(t, s2.ID, etas[1].StopID)
	assert.Equal(t, 0, etas[0].Sequence)
	assert.Equal(t, 1, etas[1].Sequence)
	assert.Equal(t, "08:10", etas[0].PlannedArrival) // 480 + 10 = 490 min = 08:10
	assert.Equal(t, "08:20", etas[1].PlannedArrival) // 490 + 10 = 500 min = 08:20
}

func TestWalk_HigherDelayRaisesFirstArrival(t *testing.T) {
	tm := matrix.NewMatrix(2)
	tm.Set(0, 1, 10)

	s1, err := domain.NewStop("A", 0, 0, "06:00", "23:00", 1)
	require.NoError(t, err)
	routeStops := []domain.RouteStop{{StopID: s1.ID, Sequence: 0}}

	baseline := walk([]*domain.Stop{s1}, tm, routeStops)

	delayed := matrix.NewMatrix(2)
	delayed.Set(0, 1, 10)
	applyDelays(delayed, []TrafficEvent{{FromIdx: 0, ToIdx: 1, DelayFactor: 2.0}})
	withDelay := walk([]*domain.Stop{s1}, delayed, routeStops)

	assert.Greater(t, withDelay[0].PlannedArrivalMin, baseline[0].PlannedArrivalMin)
}

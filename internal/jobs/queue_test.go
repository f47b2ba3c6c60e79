package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T) *Queue {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewQueue(client)
}

func TestQueue_EnqueueSetsQueuedStatus(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	req := Request{JobID: uuid.New(), Date: "2026-07-31"}
	require.NoError(t, q.Enqueue(ctx, req))

	rec, err := q.GetStatus(ctx, req.JobID.String())
	require.NoError(t, err)
	require.Equal(t, StatusQueued, rec.Status)
}

func TestQueue_DequeueRoundTrips(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	req := Request{JobID: uuid.New(), DepotID: uuid.New(), Date: "2026-07-31"}
	require.NoError(t, q.Enqueue(ctx, req))

	got, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	require.Equal(t, req.JobID, got.JobID)
	require.Equal(t, req.DepotID, got.DepotID)
}

func TestQueue_DequeueTimeoutReturnsZeroValue(t *testing.T) {
	q := newTestQueue(t)

	got, err := q.Dequeue(context.Background(), 50*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, uuid.Nil, got.JobID)
}

func TestQueue_MarkDoneAndMarkFailed(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()
	req := Request{JobID: uuid.New()}

	require.NoError(t, q.MarkDone(ctx, req, Result{NumRoutes: 2}))
	rec, err := q.GetStatus(ctx, req.JobID.String())
	require.NoError(t, err)
	require.Equal(t, StatusDone, rec.Status)
	require.NotNil(t, rec.Result)
	require.Equal(t, 2, rec.Result.NumRoutes)

	req2 := Request{JobID: uuid.New()}
	require.NoError(t, q.MarkFailed(ctx, req2, errBoom))
	rec2, err := q.GetStatus(ctx, req2.JobID.String())
	require.NoError(t, err)
	require.Equal(t, StatusFailed, rec2.Status)
	require.Equal(t, errBoom.Error(), rec2.Error)
}

var errBoom = &boomError{}

type boomError struct{}

func (e *boomError) Error() string { return "boom" }

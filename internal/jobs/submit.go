package jobs

import (
	"context"

	"github.com/google/uuid"
)

// Submit enqueues a new optimisation job and returns its ID. The handler
// that calls this never waits on the pipeline — status is polled separately.
func Submit(ctx context.Context, queue *Queue, depotID uuid.UUID, vehicleIDs, stopIDs []uuid.UUID, date string) (uuid.UUID, error) {
	req := Request{
		JobID:      uuid.New(),
		DepotID:    depotID,
		VehicleIDs: vehicleIDs,
		StopIDs:    stopIDs,
		Date:       date,
	}

	if err := queue.Enqueue(ctx, req); err != nil {
		return uuid.Nil, err
	}

	return req.JobID, nil
}

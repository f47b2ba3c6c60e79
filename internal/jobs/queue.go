package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey        = "routing:jobs:queue"
	statusKeyPrefix = "routing:jobs:status:"
	statusTTL       = 24 * time.Hour
)

// Queue is a Redis-list-backed FIFO job queue plus a per-job status store.
// No job-queue library (asynq, machinery, river) is wired into this module;
// a plain Redis list is sufficient for the single-queue, at-most-one-worker-
// pool shape this service needs, and Redis is already a dependency here.
type Queue struct {
	client *redis.Client
}

// NewQueue wraps an already-connected Redis client.
func NewQueue(client *redis.Client) *Queue {
	return &Queue{client: client}
}

// Enqueue appends a job request and marks it queued. The caller's HTTP
// handler returns right after this call — it never waits on the pipeline.
func (q *Queue) Enqueue(ctx context.Context, req Request) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal job request: %w", err)
	}

	if err := q.client.LPush(ctx, queueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue job: %w", err)
	}

	return q.setStatus(ctx, Record{
		JobID:     req.JobID,
		Status:    StatusQueued,
		UpdatedAt: time.Now(),
	})
}

// Dequeue blocks up to timeout for the next job request. A zero Request and
// nil error means the timeout elapsed with nothing queued.
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration) (Request, error) {
	res, err := q.client.BRPop(ctx, timeout, queueKey).Result()
	if err == redis.Nil {
		return Request{}, nil
	}
	if err != nil {
		return Request{}, fmt.Errorf("failed to dequeue job: %w", err)
	}

	var req Request
	// res[0] is the key name, res[1] the popped value.
	if err := json.Unmarshal([]byte(res[1]), &req); err != nil {
		return Request{}, fmt.Errorf("failed to unmarshal job request: %w", err)
	}
	return req, nil
}

// setStatus writes a job's status record with an expiry so completed jobs
// don't accumulate in Redis forever.
func (q *Queue) setStatus(ctx context.Context, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal job status: %w", err)
	}

	key := statusKeyPrefix + rec.JobID.String()
	if err := q.client.Set(ctx, key, payload, statusTTL).Err(); err != nil {
		return fmt.Errorf("failed to write job status: %w", err)
	}
	return nil
}

// MarkStarted records that a worker has picked up a job.
func (q *Queue) MarkStarted(ctx context.Context, req Request) error {
	return q.setStatus(ctx, Record{JobID: req.JobID, Status: StatusStarted, UpdatedAt: time.Now()})
}

// MarkDone records a job's successful result.
func (q *Queue) MarkDone(ctx context.Context, req Request, result Result) error {
	return q.setStatus(ctx, Record{
		JobID:     req.JobID,
		Status:    StatusDone,
		Result:    &result,
		UpdatedAt: time.Now(),
	})
}

// MarkFailed records a job's failure. The cause is string-rendered, never
// propagated as a Go error to the caller.
func (q *Queue) MarkFailed(ctx context.Context, req Request, cause error) error {
	return q.setStatus(ctx, Record{
		JobID:     req.JobID,
		Status:    StatusFailed,
		Error:     cause.Error(),
		UpdatedAt: time.Now(),
	})
}

// GetStatus reads a job's current status record.
func (q *Queue) GetStatus(ctx context.Context, jobID string) (*Record, error) {
	key := statusKeyPrefix + jobID
	payload, err := q.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("job not found: %s", jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read job status: %w", err)
	}

	var rec Record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job status: %w", err)
	}
	return &rec, nil
}

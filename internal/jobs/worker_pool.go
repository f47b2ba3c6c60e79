package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// pollTimeout bounds each worker's blocking dequeue so it can observe
// context cancellation during shutdown instead of blocking forever.
const pollTimeout = 5 * time.Second

// WorkerPool drains the job queue with a fixed number of workers, each
// running the full pipeline single-threaded per job (the solver itself does
// no I/O and does not need its own concurrency).
type WorkerPool struct {
	queue      *Queue
	pipeline   *Pipeline
	numWorkers int
	logger     *zap.Logger
}

// NewWorkerPool wires a queue and pipeline with the desired parallelism.
func NewWorkerPool(queue *Queue, pipeline *Pipeline, numWorkers int, logger *zap.Logger) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &WorkerPool{queue: queue, pipeline: pipeline, numWorkers: numWorkers, logger: logger}
}

// Run starts numWorkers goroutines that each loop: dequeue, run the
// pipeline, record the result, repeat — until ctx is cancelled. Run blocks
// until every worker has exited.
func (p *WorkerPool) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for i := 0; i < p.numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			p.workerLoop(ctx, workerID)
		}(i)
	}
	wg.Wait()
}

func (p *WorkerPool) workerLoop(ctx context.Context, workerID int) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		req, err := p.queue.Dequeue(ctx, pollTimeout)
		if err != nil {
			if p.logger != nil {
				p.logger.Warn("failed to dequeue job", zap.Int("worker", workerID), zap.Error(err))
			}
			continue
		}
		if req.JobID == uuid.Nil {
			continue // poll timeout, nothing queued
		}

		p.runJob(ctx, req)
	}
}

// runJob executes one job and records its outcome. Any panic or error
// surfaces only through the status store — it never escapes to crash the
// worker or the caller that originally submitted the job.
func (p *WorkerPool) runJob(ctx context.Context, req Request) {
	if err := p.queue.MarkStarted(ctx, req); err != nil && p.logger != nil {
		p.logger.Warn("failed to mark job started", zap.String("job_id", req.JobID.String()), zap.Error(err))
	}

	result, err := p.safeRun(ctx, req)
	if err != nil {
		if markErr := p.queue.MarkFailed(ctx, req, err); markErr != nil && p.logger != nil {
			p.logger.Error("failed to mark job failed", zap.String("job_id", req.JobID.String()), zap.Error(markErr))
		}
		return
	}

	if err := p.queue.MarkDone(ctx, req, result); err != nil && p.logger != nil {
		p.logger.Error("failed to mark job done", zap.String("job_id", req.JobID.String()), zap.Error(err))
	}
}

// safeRun recovers from panics inside the pipeline so one bad job can never
// take the worker down.
func (p *WorkerPool) safeRun(ctx context.Context, req Request) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &pipelinePanicError{value: r}
		}
	}()
	return p.pipeline.Run(ctx, req)
}

type pipelinePanicError struct {
	value interface{}
}

func (e *pipelinePanicError) Error() string {
	return "job pipeline panicked: " + toString(e.value)
}

func toString(v interface{}) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return "unknown panic"
}

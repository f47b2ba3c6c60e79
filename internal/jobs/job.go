// Package jobs implements the optimisation job runner: an HTTP handler
// enqueues a job and returns immediately, a worker pool drains the queue and
// runs the full solve pipeline, and job status is readable at any time
// through a Redis-backed status store keyed by job ID.
package jobs

import (
	"time"

	"github.com/google/uuid"
)

// Status is a job's lifecycle state.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusStarted Status = "started"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

// Request is what the optimize endpoint enqueues.
type Request struct {
	JobID      uuid.UUID   `json:"job_id"`
	DepotID    uuid.UUID   `json:"depot_id"`
	VehicleIDs []uuid.UUID `json:"vehicle_ids"`
	StopIDs    []uuid.UUID `json:"stop_ids"`
	Date       string      `json:"date"`
}

// Result is what a completed job reports.
type Result struct {
	RouteIDs         []uuid.UUID `json:"route_ids"`
	TotalDistanceKm  float64     `json:"total_distance_km"`
	GreedyDistanceKm float64     `json:"greedy_distance_km"`
	ImprovementPct   float64     `json:"improvement_pct"`
	NumRoutes        int         `json:"num_routes"`
	Score            interface{} `json:"score"`
}

// Record is the document stored in the status store under a job's ID.
type Record struct {
	JobID     uuid.UUID `json:"job_id"`
	Status    Status    `json:"status"`
	Result    *Result   `json:"result,omitempty"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// improvementPct implements the spec's formula: zero whenever the greedy
// baseline itself covered zero distance, so an all-unassigned job never
// divides by zero.
func improvementPct(greedyTotal, optimisedTotal float64) float64 {
	if greedyTotal <= 0 {
		return 0
	}
	return (greedyTotal - optimisedTotal) / greedyTotal * 100
}

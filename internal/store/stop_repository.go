package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/saan-system/services/routing/internal/domain"
)

// StopRepository persists delivery stops.
type StopRepository struct {
	db *sqlx.DB
}

// NewStopRepository wraps a database handle.
func NewStopRepository(db *sqlx.DB) *StopRepository {
	return &StopRepository{db: db}
}

// Create inserts a new pending stop.
func (r *StopRepository) Create(ctx context.Context, s *domain.Stop) error {
	query := `
		INSERT INTO stops (
			id, address, latitude, longitude, earliest_time, latest_time,
			weight_kg, status, created_at, updated_at
		) VALUES (
			:id, :address, :latitude, :longitude, :earliest_time, :latest_time,
			:weight_kg, :status, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("failed to create stop: %w", err)
	}
	return nil
}

// GetByID retrieves a stop by ID.
func (r *StopRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Stop, error) {
	query := `
		SELECT id, address, latitude, longitude, earliest_time, latest_time,
		       weight_kg, status, created_at, updated_at
		FROM stops WHERE id = $1`

	var s domain.Stop
	if err := r.db.GetContext(ctx, &s, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrStopNotFound
		}
		return nil, fmt.Errorf("failed to get stop: %w", err)
	}
	return &s, nil
}

// GetByIDs retrieves multiple stops, preserving no particular order — callers
// that need ordering (the solver, the rerouter) reorder client-side from the
// IDs they already have.
func (r *StopRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Stop, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, address, latitude, longitude, earliest_time, latest_time,
		       weight_kg, status, created_at, updated_at
		FROM stops WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build stop lookup query: %w", err)
	}
	query = r.db.Rebind(query)

	var stops []*domain.Stop
	if err := r.db.SelectContext(ctx, &stops, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get stops: %w", err)
	}
	return stops, nil
}

// GetPending lists every stop awaiting assignment.
func (r *StopRepository) GetPending(ctx context.Context) ([]*domain.Stop, error) {
	query := `
		SELECT id, address, latitude, longitude, earliest_time, latest_time,
		       weight_kg, status, created_at, updated_at
		FROM stops WHERE status = $1 ORDER BY earliest_time`

	var stops []*domain.Stop
	if err := r.db.SelectContext(ctx, &stops, query, domain.StopStatusPending); err != nil {
		return nil, fmt.Errorf("failed to list pending stops: %w", err)
	}
	return stops, nil
}

// UpdateStatus transitions a stop's status.
func (r *StopRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.StopStatus) error {
	query := `UPDATE stops SET status = $1, updated_at = now() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update stop status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrStopNotFound
	}
	return nil
}

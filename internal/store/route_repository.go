package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/saan-system/services/routing/internal/domain"
)

// RouteRepository persists solved routes and their ordered stop sequences.
type RouteRepository struct {
	db *sqlx.DB
}

// NewRouteRepository wraps a database handle.
func NewRouteRepository(db *sqlx.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// CreateWithStops persists a route header and its ordered stop sequence in a
// single transaction: a route is never visible without its stops.
func (r *RouteRepository) CreateWithStops(ctx context.Context, route *domain.Route, stops []domain.RouteStop) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin route transaction: %w", err)
	}
	defer tx.Rollback()

	routeQuery := `
		INSERT INTO routes (id, vehicle_id, date, total_distance_km, total_time_min, created_at)
		VALUES (:id, :vehicle_id, :date, :total_distance_km, :total_time_min, :created_at)`
	if _, err := tx.NamedExecContext(ctx, routeQuery, route); err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}

	stopQuery := `
		INSERT INTO route_stops (route_id, stop_id, sequence, planned_arrival, actual_arrival)
		VALUES (:route_id, :stop_id, :sequence, :planned_arrival, :actual_arrival)`
	for _, rs := range stops {
		if _, err := tx.NamedExecContext(ctx, stopQuery, rs); err != nil {
			return fmt.Errorf("failed to insert route stop: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit route transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a route header.
func (r *RouteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Route, error) {
	query := `
		SELECT id, vehicle_id, date, total_distance_km, total_time_min, created_at
		FROM routes WHERE id = $1`

	var route domain.Route
	if err := r.db.GetContext(ctx, &route, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrRouteNotFound
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}
	return &route, nil
}

// GetStops retrieves a route's stop sequence, ordered by position.
func (r *RouteRepository) GetStops(ctx context.Context, routeID uuid.UUID) ([]domain.RouteStop, error) {
	query := `
		SELECT route_id, stop_id, sequence, planned_arrival, actual_arrival
		FROM route_stops WHERE route_id = $1 ORDER BY sequence`

	var stops []domain.RouteStop
	if err := r.db.SelectContext(ctx, &stops, query, routeID); err != nil {
		return nil, fmt.Errorf("failed to get route stops: %w", err)
	}
	return stops, nil
}

// UpdateStopArrival records an actual arrival for one stop in a route.
func (r *RouteRepository) UpdateStopArrival(ctx context.Context, routeID, stopID uuid.UUID, actualArrival string) error {
	query := `
		UPDATE route_stops SET actual_arrival = $1
		WHERE route_id = $2 AND stop_id = $3`

	result, err := r.db.ExecContext(ctx, query, actualArrival, routeID, stopID)
	if err != nil {
		return fmt.Errorf("failed to update stop arrival: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("route stop not found: route=%s stop=%s", routeID, stopID)
	}
	return nil
}

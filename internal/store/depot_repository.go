package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/saan-system/services/routing/internal/domain"
)

// DepotRepository persists depots.
type DepotRepository struct {
	db *sqlx.DB
}

// NewDepotRepository wraps a database handle.
func NewDepotRepository(db *sqlx.DB) *DepotRepository {
	return &DepotRepository{db: db}
}

// Create inserts a new depot.
func (r *DepotRepository) Create(ctx context.Context, d *domain.Depot) error {
	query := `
		INSERT INTO depots (id, name, latitude, longitude, open_time, close_time, created_at, updated_at)
		VALUES (:id, :name, :latitude, :longitude, :open_time, :close_time, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, d); err != nil {
		return fmt.Errorf("failed to create depot: %w", err)
	}
	return nil
}

// GetByID retrieves a depot by ID.
func (r *DepotRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Depot, error) {
	query := `
		SELECT id, name, latitude, longitude, open_time, close_time, created_at, updated_at
		FROM depots WHERE id = $1`

	var d domain.Depot
	if err := r.db.GetContext(ctx, &d, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrDepotNotFound
		}
		return nil, fmt.Errorf("failed to get depot: %w", err)
	}
	return &d, nil
}

// GetAll lists every depot.
func (r *DepotRepository) GetAll(ctx context.Context) ([]*domain.Depot, error) {
	query := `
		SELECT id, name, latitude, longitude, open_time, close_time, created_at, updated_at
		FROM depots ORDER BY name`

	var depots []*domain.Depot
	if err := r.db.SelectContext(ctx, &depots, query); err != nil {
		return nil, fmt.Errorf("failed to list depots: %w", err)
	}
	return depots, nil
}

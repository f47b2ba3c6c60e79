package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/saan-system/services/routing/internal/domain"
)

// VehicleRepository persists vehicles.
type VehicleRepository struct {
	db *sqlx.DB
}

// NewVehicleRepository wraps a database handle.
func NewVehicleRepository(db *sqlx.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Create inserts a new vehicle.
func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, depot_id, capacity_kg, driver_name, created_at, updated_at)
		VALUES (:id, :depot_id, :capacity_kg, :driver_name, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, v); err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// GetByID retrieves a vehicle by ID.
func (r *VehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	query := `
		SELECT id, depot_id, capacity_kg, driver_name, created_at, updated_at
		FROM vehicles WHERE id = $1`

	var v domain.Vehicle
	if err := r.db.GetContext(ctx, &v, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &v, nil
}

// GetByDepot lists every vehicle assigned to a depot.
func (r *VehicleRepository) GetByDepot(ctx context.Context, depotID uuid.UUID) ([]*domain.Vehicle, error) {
	query := `
		SELECT id, depot_id, capacity_kg, driver_name, created_at, updated_at
		FROM vehicles WHERE depot_id = $1 ORDER BY driver_name`

	var vehicles []*domain.Vehicle
	if err := r.db.SelectContext(ctx, &vehicles, query, depotID); err != nil {
		return nil, fmt.Errorf("failed to list vehicles for depot: %w", err)
	}
	return vehicles, nil
}

// GetAll lists every vehicle.
func (r *VehicleRepository) GetAll(ctx context.Context) ([]*domain.Vehicle, error) {
	query := `
		SELECT id, depot_id, capacity_kg, driver_name, created_at, updated_at
		FROM vehicles ORDER BY driver_name`

	var vehicles []*domain.Vehicle
	if err := r.db.SelectContext(ctx, &vehicles, query); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Depot is the fixed origin and return point for every route in a scenario.
// It occupies matrix index 0 whenever a distance/time matrix is built.
type Depot struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	OpenTime    string    `json:"open_time" db:"open_time"`   // "HH:MM"
	CloseTime   string    `json:"close_time" db:"close_time"` // "HH:MM"
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

var (
	ErrDepotInvalidName   = errors.New("depot name cannot be empty")
	ErrDepotInvalidWindow = errors.New("depot open_time must be before close_time")
	ErrDepotNotFound      = errors.New("depot not found")
)

// NewDepot creates a new depot with validation.
func NewDepot(name string, lat, lng float64, openTime, closeTime string) (*Depot, error) {
	if name == "" {
		return nil, ErrDepotInvalidName
	}

	openMin, err := TimeToMinutes(openTime)
	if err != nil {
		return nil, err
	}
	closeMin, err := TimeToMinutes(closeTime)
	if err != nil {
		return nil, err
	}
	if openMin >= closeMin {
		return nil, ErrDepotInvalidWindow
	}

	now := time.Now()
	return &Depot{
		ID:        uuid.New(),
		Name:      name,
		Latitude:  lat,
		Longitude: lng,
		OpenTime:  openTime,
		CloseTime: closeTime,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

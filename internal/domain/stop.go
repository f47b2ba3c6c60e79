package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// StopStatus is the lifecycle state of a delivery stop.
type StopStatus string

const (
	StopStatusPending   StopStatus = "pending"
	StopStatusInRoute   StopStatus = "in_route"
	StopStatusDelivered StopStatus = "delivered"
	StopStatusFailed    StopStatus = "failed"
)

// Stop is a delivery request with a hard time window.
type Stop struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Address       string     `json:"address" db:"address"`
	Latitude      float64    `json:"latitude" db:"latitude"`
	Longitude     float64    `json:"longitude" db:"longitude"`
	EarliestTime  string     `json:"earliest_time" db:"earliest_time"` // "HH:MM"
	LatestTime    string     `json:"latest_time" db:"latest_time"`     // "HH:MM"
	WeightKg      float64    `json:"package_weight_kg" db:"weight_kg"`
	Status        StopStatus `json:"status" db:"status"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

var (
	ErrStopInvalidWeight = errors.New("stop package weight must be positive")
	ErrStopInvalidWindow = errors.New("stop earliest_time must not be after latest_time")
	ErrStopNotFound      = errors.New("stop not found")
)

// NewStop creates a new pending stop with validation.
func NewStop(address string, lat, lng float64, earliest, latest string, weightKg float64) (*Stop, error) {
	if weightKg <= 0 {
		return nil, ErrStopInvalidWeight
	}

	earliestMin, err := TimeToMinutes(earliest)
	if err != nil {
		return nil, err
	}
	latestMin, err := TimeToMinutes(latest)
	if err != nil {
		return nil, err
	}
	if earliestMin > latestMin {
		return nil, ErrStopInvalidWindow
	}

	now := time.Now()
	return &Stop{
		ID:           uuid.New(),
		Address:      address,
		Latitude:     lat,
		Longitude:    lng,
		EarliestTime: earliest,
		LatestTime:   latest,
		WeightKg:     weightKg,
		Status:       StopStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// EarliestMinutes returns the earliest delivery time as minutes-since-midnight.
func (s *Stop) EarliestMinutes() float64 {
	m, _ := TimeToMinutes(s.EarliestTime)
	return m
}

// LatestMinutes returns the latest delivery time as minutes-since-midnight.
func (s *Stop) LatestMinutes() float64 {
	m, _ := TimeToMinutes(s.LatestTime)
	return m
}

// MarkInRoute transitions the stop into an active route.
func (s *Stop) MarkInRoute() {
	s.Status = StopStatusInRoute
	s.UpdatedAt = time.Now()
}

// MarkDelivered transitions the stop to delivered.
func (s *Stop) MarkDelivered() {
	s.Status = StopStatusDelivered
	s.UpdatedAt = time.Now()
}

// MarkFailed transitions the stop to failed.
func (s *Stop) MarkFailed() {
	s.Status = StopStatusFailed
	s.UpdatedAt = time.Now()
}

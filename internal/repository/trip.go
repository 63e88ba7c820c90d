package repository

import (
	"context"

	"sotrama/internal/domain"
)

// TripRepository defines the persistence operations for trips.
type TripRepository interface {
	// Create persists a new trip with its externally assigned ID.
	Create(ctx context.Context, trip *domain.Trip) error

	// GetByID retrieves a trip by ID.
	GetByID(ctx context.Context, id int64) (*domain.Trip, error)

	// GetAll retrieves all trips.
	GetAll(ctx context.Context) ([]*domain.Trip, error)

	// AdjustSeats changes a trip's available-seat count by delta
	// (negative consumes seats, positive releases them). It fails with
	// ErrNotFound if the trip does not exist and with an
	// InsufficientSeatsError if the adjustment would go below zero.
	AdjustSeats(ctx context.Context, id int64, delta int64) error

	// DeleteAll removes every trip. Used by the catalog sync operation.
	DeleteAll(ctx context.Context) error

	// Count returns the number of trips.
	Count(ctx context.Context) (int64, error)
}

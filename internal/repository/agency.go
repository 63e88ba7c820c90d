package repository

import (
	"context"

	"sotrama/internal/domain"
)

// AgencyRepository defines the persistence operations for agencies.
type AgencyRepository interface {
	// Create persists a new agency with its externally assigned ID.
	Create(ctx context.Context, agency *domain.Agency) error

	// GetByID retrieves an agency by ID.
	GetByID(ctx context.Context, id int64) (*domain.Agency, error)

	// GetAll retrieves all agencies.
	GetAll(ctx context.Context) ([]*domain.Agency, error)

	// Count returns the number of agencies.
	Count(ctx context.Context) (int64, error)
}

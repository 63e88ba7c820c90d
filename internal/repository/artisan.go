package repository

import (
	"context"

	"sotrama/internal/domain"
)

// ArtisanFilter narrows an artisan directory listing.
// Zero values match everything.
type ArtisanFilter struct {
	Trade string
	City  string
}

// ArtisanRepository defines the persistence operations for the artisans
// directory.
type ArtisanRepository interface {
	// Create persists a new artisan and assigns its ID.
	Create(ctx context.Context, artisan *domain.Artisan) error

	// GetByID retrieves an artisan by ID.
	GetByID(ctx context.Context, id int64) (*domain.Artisan, error)

	// GetAll retrieves artisans matching the filter, best rated first.
	GetAll(ctx context.Context, filter ArtisanFilter) ([]*domain.Artisan, error)

	// Count returns the number of artisans.
	Count(ctx context.Context) (int64, error)

	// CreateComment persists a comment on an artisan and assigns its ID.
	CreateComment(ctx context.Context, comment *domain.ArtisanComment) error

	// GetComments retrieves an artisan's comments, newest first.
	GetComments(ctx context.Context, artisanID int64) ([]*domain.ArtisanComment, error)
}

// Package seed populates empty reference tables with the bundled datasets.
// Each dataset is inserted only when its table is empty, so pre-existing
// database files are left untouched.
package seed

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"sotrama/internal/logger"
	"sotrama/internal/repository/sqlite"
)

// Seed inserts the bundled agencies, trips and artisans into empty tables.
func Seed(ctx context.Context, db *sql.DB) error {
	agencyRepo := sqlite.NewAgencyRepository(db)
	tripRepo := sqlite.NewTripRepository(db)
	artisanRepo := sqlite.NewArtisanRepository(db)

	count, err := agencyRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count agencies: %w", err)
	}
	if count == 0 {
		agencies := Agencies()
		for _, agency := range agencies {
			if err := agencyRepo.Create(ctx, agency); err != nil {
				return fmt.Errorf("failed to seed agency %d: %w", agency.ID, err)
			}
		}
		logger.Info("seeded agencies", zap.Int("count", len(agencies)))
	}

	count, err = tripRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count trips: %w", err)
	}
	if count == 0 {
		trips := Trips()
		for _, trip := range trips {
			if err := tripRepo.Create(ctx, trip); err != nil {
				return fmt.Errorf("failed to seed trip %d: %w", trip.ID, err)
			}
		}
		logger.Info("seeded trips", zap.Int("count", len(trips)))
	}

	count, err = artisanRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count artisans: %w", err)
	}
	if count == 0 {
		artisans := Artisans()
		for _, artisan := range artisans {
			if err := artisanRepo.Create(ctx, artisan); err != nil {
				return fmt.Errorf("failed to seed artisan %q: %w", artisan.Name, err)
			}
		}
		logger.Info("seeded artisans", zap.Int("count", len(artisans)))
	}

	return nil
}

package tests

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"sotrama/internal/domain"
	"sotrama/internal/repository/sqlite"
)

// newTestDB opens an in-memory SQLite database with the schema applied.
// A single connection keeps the memory database alive for the whole test.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(ON)")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := sqlite.Initialize(context.Background(), db); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// seedTrip inserts an agency and a trip with the given seat count.
func seedTrip(t *testing.T, db *sql.DB, tripID, seats int64) {
	t.Helper()

	ctx := context.Background()
	agencyRepo := sqlite.NewAgencyRepository(db)
	tripRepo := sqlite.NewTripRepository(db)

	agency := &domain.Agency{
		ID:        tripID,
		Name:      "Bani Transport",
		Phone:     "+22320221122",
		Email:     "contact@bani.ml",
		City:      "Bamako",
		Latitude:  12.6392,
		Longitude: -8.0029,
	}
	if err := agencyRepo.Create(ctx, agency); err != nil {
		t.Fatalf("failed to seed agency: %v", err)
	}

	trip := &domain.Trip{
		ID:             tripID,
		AgencyID:       agency.ID,
		Origin:         "Bamako",
		Destination:    "Sikasso",
		Date:           "2025-07-15",
		Time:           "08:00",
		Price:          5000,
		AvailableSeats: seats,
	}
	if err := tripRepo.Create(ctx, trip); err != nil {
		t.Fatalf("failed to seed trip: %v", err)
	}
}

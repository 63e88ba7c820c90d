package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"sotrama/internal/domain"
	"sotrama/internal/repository"
)

// TripRepository is a SQLite implementation of repository.TripRepository.
type TripRepository struct {
	q Querier
}

// NewTripRepository creates a new SQLite trip repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{q: db}
}

// NewTripRepositoryWithTx creates a trip repository using a transaction.
func NewTripRepositoryWithTx(tx *sql.Tx) *TripRepository {
	return &TripRepository{q: tx}
}

// Create persists a new trip.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	query := `
		INSERT INTO voyages (id, agenceId, depart, arrivee, date, heure, prix, placesDisponibles)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.q.ExecContext(ctx, query,
		trip.ID,
		trip.AgencyID,
		trip.Origin,
		trip.Destination,
		trip.Date,
		trip.Time,
		trip.Price,
		trip.AvailableSeats,
	)

	return err
}

// GetByID retrieves a trip by ID.
func (r *TripRepository) GetByID(ctx context.Context, id int64) (*domain.Trip, error) {
	query := `
		SELECT id, agenceId, depart, arrivee, date, heure, prix, placesDisponibles
		FROM voyages WHERE id = ?
	`

	var trip domain.Trip
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&trip.ID,
		&trip.AgencyID,
		&trip.Origin,
		&trip.Destination,
		&trip.Date,
		&trip.Time,
		&trip.Price,
		&trip.AvailableSeats,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &trip, nil
}

// GetAll retrieves all trips ordered by departure date and time.
func (r *TripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	query := `
		SELECT id, agenceId, depart, arrivee, date, heure, prix, placesDisponibles
		FROM voyages ORDER BY date, heure, id
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		var trip domain.Trip
		if err := rows.Scan(
			&trip.ID,
			&trip.AgencyID,
			&trip.Origin,
			&trip.Destination,
			&trip.Date,
			&trip.Time,
			&trip.Price,
			&trip.AvailableSeats,
		); err != nil {
			return nil, err
		}
		trips = append(trips, &trip)
	}

	return trips, rows.Err()
}

// AdjustSeats changes a trip's available-seat count by delta. The read and
// the write run on the same Querier, so when called with a transaction the
// capacity check is never evaluated against a stale value.
func (r *TripRepository) AdjustSeats(ctx context.Context, id int64, delta int64) error {
	var available int64
	err := r.q.QueryRowContext(ctx,
		`SELECT placesDisponibles FROM voyages WHERE id = ?`, id,
	).Scan(&available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}

	next := available + delta
	if next < 0 {
		return &repository.InsufficientSeatsError{TripID: id, Remaining: available}
	}

	_, err = r.q.ExecContext(ctx,
		`UPDATE voyages SET placesDisponibles = ? WHERE id = ?`, next, id,
	)
	return err
}

// DeleteAll removes every trip.
func (r *TripRepository) DeleteAll(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM voyages`)
	return err
}

// Count returns the number of trips.
func (r *TripRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM voyages`).Scan(&count)
	return count, err
}

// Ensure TripRepository implements repository.TripRepository.
var _ repository.TripRepository = (*TripRepository)(nil)

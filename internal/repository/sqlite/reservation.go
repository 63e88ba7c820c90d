package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sotrama/internal/domain"
	"sotrama/internal/repository"
)

// ReservationRepository is a SQLite implementation of
// repository.ReservationRepository.
type ReservationRepository struct {
	q Querier
}

// NewReservationRepository creates a new SQLite reservation repository.
func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{q: db}
}

// NewReservationRepositoryWithTx creates a reservation repository using a
// transaction.
func NewReservationRepositoryWithTx(tx *sql.Tx) *ReservationRepository {
	return &ReservationRepository{q: tx}
}

// createdAt is stored as TEXT. Existing app databases hold ISO 8601
// strings with fractional seconds, which time.RFC3339 parses as well.
func parseCreatedAt(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Create persists a new reservation and assigns its auto-incremented ID.
func (r *ReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	query := `
		INSERT INTO reservations (voyageId, nombrePlaces, status, paymentStatus, createdAt)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.q.ExecContext(ctx, query,
		reservation.TripID,
		reservation.Seats,
		reservation.Status,
		reservation.PaymentStatus,
		reservation.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	reservation.ID = id

	return nil
}

// GetByID retrieves a reservation by ID.
func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := `
		SELECT id, voyageId, nombrePlaces, status, paymentStatus, createdAt
		FROM reservations WHERE id = ?
	`

	var reservation domain.Reservation
	var createdAt string
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.TripID,
		&reservation.Seats,
		&reservation.Status,
		&reservation.PaymentStatus,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	reservation.CreatedAt = parseCreatedAt(createdAt)

	return &reservation, nil
}

// GetAll retrieves all reservations, newest first.
func (r *ReservationRepository) GetAll(ctx context.Context) ([]*domain.Reservation, error) {
	query := `
		SELECT id, voyageId, nombrePlaces, status, paymentStatus, createdAt
		FROM reservations ORDER BY id DESC
	`
	return r.queryReservations(ctx, query)
}

// GetByStatus retrieves reservations matching the given status.
func (r *ReservationRepository) GetByStatus(ctx context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error) {
	query := `
		SELECT id, voyageId, nombrePlaces, status, paymentStatus, createdAt
		FROM reservations WHERE status = ? ORDER BY id DESC
	`
	return r.queryReservations(ctx, query, status)
}

func (r *ReservationRepository) queryReservations(ctx context.Context, query string, args ...any) ([]*domain.Reservation, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []*domain.Reservation
	for rows.Next() {
		var reservation domain.Reservation
		var createdAt string
		if err := rows.Scan(
			&reservation.ID,
			&reservation.TripID,
			&reservation.Seats,
			&reservation.Status,
			&reservation.PaymentStatus,
			&createdAt,
		); err != nil {
			return nil, err
		}
		reservation.CreatedAt = parseCreatedAt(createdAt)
		reservations = append(reservations, &reservation)
	}

	return reservations, rows.Err()
}

// GetAllWithTrips retrieves all reservations joined with their trip and
// agency, newest first.
func (r *ReservationRepository) GetAllWithTrips(ctx context.Context) ([]*domain.ReservationDetail, error) {
	query := `
		SELECT r.id, r.voyageId, r.nombrePlaces, r.status, r.paymentStatus, r.createdAt,
		       v.id, v.agenceId, v.depart, v.arrivee, v.date, v.heure, v.prix, v.placesDisponibles,
		       a.id, a.nom, a.telephone, a.email, a.ville, a.latitude, a.longitude
		FROM reservations r
		JOIN voyages v ON v.id = r.voyageId
		JOIN agences a ON a.id = v.agenceId
		ORDER BY r.id DESC
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []*domain.ReservationDetail
	for rows.Next() {
		var d domain.ReservationDetail
		var createdAt string
		if err := rows.Scan(
			&d.Reservation.ID,
			&d.Reservation.TripID,
			&d.Reservation.Seats,
			&d.Reservation.Status,
			&d.Reservation.PaymentStatus,
			&createdAt,
			&d.Trip.ID,
			&d.Trip.AgencyID,
			&d.Trip.Origin,
			&d.Trip.Destination,
			&d.Trip.Date,
			&d.Trip.Time,
			&d.Trip.Price,
			&d.Trip.AvailableSeats,
			&d.Agency.ID,
			&d.Agency.Name,
			&d.Agency.Phone,
			&d.Agency.Email,
			&d.Agency.City,
			&d.Agency.Latitude,
			&d.Agency.Longitude,
		); err != nil {
			return nil, err
		}
		d.Reservation.CreatedAt = parseCreatedAt(createdAt)
		details = append(details, &d)
	}

	return details, rows.Err()
}

// Update rewrites all mutable fields of an existing reservation.
func (r *ReservationRepository) Update(ctx context.Context, reservation *domain.Reservation) error {
	query := `
		UPDATE reservations
		SET voyageId = ?, nombrePlaces = ?, status = ?, paymentStatus = ?
		WHERE id = ?
	`

	result, err := r.q.ExecContext(ctx, query,
		reservation.TripID,
		reservation.Seats,
		reservation.Status,
		reservation.PaymentStatus,
		reservation.ID,
	)
	if err != nil {
		return err
	}

	return requireRowAffected(result)
}

// UpdatePaymentStatus sets a reservation's payment status.
func (r *ReservationRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	result, err := r.q.ExecContext(ctx,
		`UPDATE reservations SET paymentStatus = ? WHERE id = ?`, status, id,
	)
	if err != nil {
		return err
	}

	return requireRowAffected(result)
}

// Delete removes a reservation row.
func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return err
	}

	return requireRowAffected(result)
}

// Count returns the number of reservations.
func (r *ReservationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&count)
	return count, err
}

// requireRowAffected maps a no-op write to ErrNotFound.
func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Ensure ReservationRepository implements repository.ReservationRepository.
var _ repository.ReservationRepository = (*ReservationRepository)(nil)

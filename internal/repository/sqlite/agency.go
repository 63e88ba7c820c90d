package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"sotrama/internal/domain"
	"sotrama/internal/repository"
)

// AgencyRepository is a SQLite implementation of repository.AgencyRepository.
type AgencyRepository struct {
	q Querier
}

// NewAgencyRepository creates a new SQLite agency repository.
func NewAgencyRepository(db *sql.DB) *AgencyRepository {
	return &AgencyRepository{q: db}
}

// Create persists a new agency.
func (r *AgencyRepository) Create(ctx context.Context, agency *domain.Agency) error {
	query := `
		INSERT INTO agences (id, nom, telephone, email, ville, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.q.ExecContext(ctx, query,
		agency.ID,
		agency.Name,
		agency.Phone,
		agency.Email,
		agency.City,
		agency.Latitude,
		agency.Longitude,
	)

	return err
}

// GetByID retrieves an agency by ID.
func (r *AgencyRepository) GetByID(ctx context.Context, id int64) (*domain.Agency, error) {
	query := `
		SELECT id, nom, telephone, email, ville, latitude, longitude
		FROM agences WHERE id = ?
	`

	var agency domain.Agency
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&agency.ID,
		&agency.Name,
		&agency.Phone,
		&agency.Email,
		&agency.City,
		&agency.Latitude,
		&agency.Longitude,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &agency, nil
}

// GetAll retrieves all agencies ordered by name.
func (r *AgencyRepository) GetAll(ctx context.Context) ([]*domain.Agency, error) {
	query := `
		SELECT id, nom, telephone, email, ville, latitude, longitude
		FROM agences ORDER BY nom
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agencies []*domain.Agency
	for rows.Next() {
		var agency domain.Agency
		if err := rows.Scan(
			&agency.ID,
			&agency.Name,
			&agency.Phone,
			&agency.Email,
			&agency.City,
			&agency.Latitude,
			&agency.Longitude,
		); err != nil {
			return nil, err
		}
		agencies = append(agencies, &agency)
	}

	return agencies, rows.Err()
}

// Count returns the number of agencies.
func (r *AgencyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM agences`).Scan(&count)
	return count, err
}

// Ensure AgencyRepository implements repository.AgencyRepository.
var _ repository.AgencyRepository = (*AgencyRepository)(nil)

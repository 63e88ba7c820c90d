package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sotrama/internal/domain"
	"sotrama/internal/repository"
)

// ArtisanRepository is a SQLite implementation of repository.ArtisanRepository.
type ArtisanRepository struct {
	q Querier
}

// NewArtisanRepository creates a new SQLite artisan repository.
func NewArtisanRepository(db *sql.DB) *ArtisanRepository {
	return &ArtisanRepository{q: db}
}

// Create persists a new artisan and assigns its auto-incremented ID.
func (r *ArtisanRepository) Create(ctx context.Context, artisan *domain.Artisan) error {
	query := `
		INSERT INTO artisans (nom, metier, ville, quartier, contact, whatsapp, note)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.q.ExecContext(ctx, query,
		artisan.Name,
		artisan.Trade,
		artisan.City,
		artisan.Quarter,
		artisan.Contact,
		artisan.WhatsApp,
		artisan.Rating,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	artisan.ID = id

	return nil
}

// GetByID retrieves an artisan by ID.
func (r *ArtisanRepository) GetByID(ctx context.Context, id int64) (*domain.Artisan, error) {
	query := `
		SELECT id, nom, metier, ville, quartier, contact, whatsapp, note
		FROM artisans WHERE id = ?
	`

	var artisan domain.Artisan
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&artisan.ID,
		&artisan.Name,
		&artisan.Trade,
		&artisan.City,
		&artisan.Quarter,
		&artisan.Contact,
		&artisan.WhatsApp,
		&artisan.Rating,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &artisan, nil
}

// GetAll retrieves artisans matching the filter, best rated first.
func (r *ArtisanRepository) GetAll(ctx context.Context, filter repository.ArtisanFilter) ([]*domain.Artisan, error) {
	query := `
		SELECT id, nom, metier, ville, quartier, contact, whatsapp, note
		FROM artisans WHERE 1=1
	`
	var args []any

	if filter.Trade != "" {
		query += ` AND metier = ?`
		args = append(args, filter.Trade)
	}
	if filter.City != "" {
		query += ` AND ville = ?`
		args = append(args, filter.City)
	}
	query += ` ORDER BY note DESC, nom`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artisans []*domain.Artisan
	for rows.Next() {
		var artisan domain.Artisan
		if err := rows.Scan(
			&artisan.ID,
			&artisan.Name,
			&artisan.Trade,
			&artisan.City,
			&artisan.Quarter,
			&artisan.Contact,
			&artisan.WhatsApp,
			&artisan.Rating,
		); err != nil {
			return nil, err
		}
		artisans = append(artisans, &artisan)
	}

	return artisans, rows.Err()
}

// Count returns the number of artisans.
func (r *ArtisanRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM artisans`).Scan(&count)
	return count, err
}

// CreateComment persists a comment and assigns its auto-incremented ID.
func (r *ArtisanRepository) CreateComment(ctx context.Context, comment *domain.ArtisanComment) error {
	query := `INSERT INTO commentaires (artisanId, contenu, date) VALUES (?, ?, ?)`

	result, err := r.q.ExecContext(ctx, query,
		comment.ArtisanID,
		comment.Content,
		comment.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	comment.ID = id

	return nil
}

// GetComments retrieves an artisan's comments, newest first.
func (r *ArtisanRepository) GetComments(ctx context.Context, artisanID int64) ([]*domain.ArtisanComment, error) {
	query := `
		SELECT id, artisanId, contenu, date
		FROM commentaires WHERE artisanId = ? ORDER BY id DESC
	`

	rows, err := r.q.QueryContext(ctx, query, artisanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*domain.ArtisanComment
	for rows.Next() {
		var comment domain.ArtisanComment
		var createdAt string
		if err := rows.Scan(
			&comment.ID,
			&comment.ArtisanID,
			&comment.Content,
			&createdAt,
		); err != nil {
			return nil, err
		}
		comment.CreatedAt = parseCreatedAt(createdAt)
		comments = append(comments, &comment)
	}

	return comments, rows.Err()
}

// Ensure ArtisanRepository implements repository.ArtisanRepository.
var _ repository.ArtisanRepository = (*ArtisanRepository)(nil)

package repository

import (
	"context"

	"sotrama/internal/domain"
)

// ReservationRepository defines the persistence operations for reservations.
//
// Create and Delete only touch the reservation row itself; keeping the
// owning trip's seat inventory in step is the caller's job and must happen
// in the same transaction.
type ReservationRepository interface {
	// Create persists a new reservation and assigns its ID.
	Create(ctx context.Context, reservation *domain.Reservation) error

	// GetByID retrieves a reservation by ID.
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)

	// GetAll retrieves all reservations, newest first.
	GetAll(ctx context.Context) ([]*domain.Reservation, error)

	// GetByStatus retrieves reservations matching the given status.
	GetByStatus(ctx context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error)

	// GetAllWithTrips retrieves all reservations joined with their trip
	// and agency, newest first.
	GetAllWithTrips(ctx context.Context) ([]*domain.ReservationDetail, error)

	// Update rewrites all mutable fields of an existing reservation.
	// Not exercised by the seat-adjustment path.
	Update(ctx context.Context, reservation *domain.Reservation) error

	// UpdatePaymentStatus sets a reservation's payment status.
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error

	// Delete removes a reservation row.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of reservations.
	Count(ctx context.Context) (int64, error)
}

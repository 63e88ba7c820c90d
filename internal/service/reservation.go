package service

import (
	"context"
	"database/sql"
	"time"

	"sotrama/internal/domain"
	"sotrama/internal/redis"
	"sotrama/internal/repository"
	"sotrama/internal/repository/sqlite"
)

// ReservationService handles reservation operations. Seat inventory and
// reservation rows are always changed inside one transaction, so a trip's
// available seats plus its reserved seats stay constant.
type ReservationService struct {
	db                  *sql.DB
	tripRepo            repository.TripRepository
	reservationRepo     repository.ReservationRepository
	cacheStore          *redis.CacheStore
	notificationService *NotificationService
}

// NewReservationService creates a new ReservationService.
func NewReservationService(
	db *sql.DB,
	tripRepo repository.TripRepository,
	reservationRepo repository.ReservationRepository,
	cacheStore *redis.CacheStore,
	notificationService *NotificationService,
) *ReservationService {
	return &ReservationService{
		db:                  db,
		tripRepo:            tripRepo,
		reservationRepo:     reservationRepo,
		cacheStore:          cacheStore,
		notificationService: notificationService,
	}
}

// CreateReservationRequest contains the parameters for creating a reservation.
type CreateReservationRequest struct {
	TripID int64
	Seats  int64
}

// CreateReservation reserves seats on a trip. The seat decrement and the
// reservation insert commit together or not at all.
func (s *ReservationService) CreateReservation(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	if req.TripID <= 0 {
		return nil, ErrInvalidTripID
	}

	if req.Seats <= 0 {
		return nil, ErrInvalidSeatCount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Create transaction-scoped repositories.
	txTripRepo := sqlite.NewTripRepositoryWithTx(tx)
	txReservationRepo := sqlite.NewReservationRepositoryWithTx(tx)

	if err = txTripRepo.AdjustSeats(ctx, req.TripID, -req.Seats); err != nil {
		return nil, err
	}

	reservation := &domain.Reservation{
		TripID:        req.TripID,
		Seats:         req.Seats,
		Status:        domain.ReservationStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
		CreatedAt:     time.Now().UTC(),
	}

	if err = txReservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateTrips(ctx)
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyReservationCreated(ctx, reservation)
	}

	return reservation, nil
}

// CancelReservation removes a reservation and returns its seats to the trip.
func (s *ReservationService) CancelReservation(ctx context.Context, reservationID int64) error {
	if reservationID <= 0 {
		return ErrInvalidReservationID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txTripRepo := sqlite.NewTripRepositoryWithTx(tx)
	txReservationRepo := sqlite.NewReservationRepositoryWithTx(tx)

	var reservation *domain.Reservation
	reservation, err = txReservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}

	if err = txTripRepo.AdjustSeats(ctx, reservation.TripID, reservation.Seats); err != nil {
		return err
	}

	if err = txReservationRepo.Delete(ctx, reservationID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateTrips(ctx)
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyReservationCancelled(ctx, reservation)
	}

	return nil
}

// GetReservation retrieves a reservation by ID.
func (s *ReservationService) GetReservation(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	if reservationID <= 0 {
		return nil, ErrInvalidReservationID
	}

	return s.reservationRepo.GetByID(ctx, reservationID)
}

// ListReservations returns all reservations, optionally filtered by status.
func (s *ReservationService) ListReservations(ctx context.Context, status string) ([]*domain.Reservation, error) {
	if status != "" {
		return s.reservationRepo.GetByStatus(ctx, domain.ReservationStatus(status))
	}

	return s.reservationRepo.GetAll(ctx)
}

// ListReservationsWithTrips returns all reservations joined with their trip
// and agency details, newest first.
func (s *ReservationService) ListReservationsWithTrips(ctx context.Context) ([]*domain.ReservationDetail, error) {
	return s.reservationRepo.GetAllWithTrips(ctx)
}

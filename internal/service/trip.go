package service

import (
	"context"
	"database/sql"
	"strings"

	"sotrama/internal/domain"
	"sotrama/internal/redis"
	"sotrama/internal/repository"
	"sotrama/internal/repository/sqlite"
)

// TripService handles trip catalog operations.
type TripService struct {
	db              *sql.DB
	tripRepo        repository.TripRepository
	reservationRepo repository.ReservationRepository
	cacheStore      *redis.CacheStore
}

// NewTripService creates a new TripService.
func NewTripService(
	db *sql.DB,
	tripRepo repository.TripRepository,
	reservationRepo repository.ReservationRepository,
	cacheStore *redis.CacheStore,
) *TripService {
	return &TripService{
		db:              db,
		tripRepo:        tripRepo,
		reservationRepo: reservationRepo,
		cacheStore:      cacheStore,
	}
}

// TripFilter narrows a trip listing. Zero values mean no constraint.
type TripFilter struct {
	Origin      string
	Destination string
	Date        string
	MinPrice    int64
	MaxPrice    int64
}

// ListTrips returns the trip catalog, filtered in memory. The unfiltered
// catalog is served from cache when available; listing never mutates it.
func (s *TripService) ListTrips(ctx context.Context, filter TripFilter) ([]*domain.Trip, error) {
	trips, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Trip, 0, len(trips))
	for _, trip := range trips {
		if matchesFilter(trip, filter) {
			filtered = append(filtered, trip)
		}
	}

	return filtered, nil
}

// GetTrip retrieves a trip by ID.
func (s *TripService) GetTrip(ctx context.Context, tripID int64) (*domain.Trip, error) {
	if tripID <= 0 {
		return nil, ErrInvalidTripID
	}

	return s.tripRepo.GetByID(ctx, tripID)
}

// SyncTrips replaces the whole trip catalog. The sync is refused while
// any reservation exists, since replacing a trip would strand the seats
// its reservations hold.
func (s *TripService) SyncTrips(ctx context.Context, trips []*domain.Trip) error {
	for _, trip := range trips {
		if trip.ID <= 0 || trip.AgencyID <= 0 || trip.Origin == "" || trip.Destination == "" ||
			trip.Date == "" || trip.Time == "" || trip.Price < 0 || trip.AvailableSeats < 0 {
			return ErrInvalidTripData
		}
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

	// The count runs inside the transaction, so a reservation committed
	// after this check cannot slip past the sync.
	var count int64
	count, err = txReservationRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		err = ErrCatalogInUse
		return err
	}

	if err = txTripRepo.DeleteAll(ctx); err != nil {
		return err
	}

	for _, trip := range trips {
		if err = txTripRepo.Create(ctx, trip); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateTrips(ctx)
	}

	return nil
}

// loadCatalog returns the full trip list, from cache when fresh.
func (s *TripService) loadCatalog(ctx context.Context) ([]*domain.Trip, error) {
	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetTrips(ctx)
		if err == nil && cached != nil {
			trips := make([]*domain.Trip, 0, len(cached))
			for _, c := range cached {
				trips = append(trips, &domain.Trip{
					ID:             c.ID,
					AgencyID:       c.AgencyID,
					Origin:         c.Origin,
					Destination:    c.Destination,
					Date:           c.Date,
					Time:           c.Time,
					Price:          c.Price,
					AvailableSeats: c.AvailableSeats,
				})
			}
			return trips, nil
		}
	}

	trips, err := s.tripRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		cached := make([]redis.CachedTrip, 0, len(trips))
		for _, t := range trips {
			cached = append(cached, redis.CachedTrip{
				ID:             t.ID,
				AgencyID:       t.AgencyID,
				Origin:         t.Origin,
				Destination:    t.Destination,
				Date:           t.Date,
				Time:           t.Time,
				Price:          t.Price,
				AvailableSeats: t.AvailableSeats,
			})
		}
		_ = s.cacheStore.SetTrips(ctx, cached)
	}

	return trips, nil
}

func matchesFilter(trip *domain.Trip, filter TripFilter) bool {
	if filter.Origin != "" && !containsFold(trip.Origin, filter.Origin) {
		return false
	}
	if filter.Destination != "" && !containsFold(trip.Destination, filter.Destination) {
		return false
	}
	if filter.Date != "" && trip.Date != filter.Date {
		return false
	}
	if filter.MinPrice > 0 && trip.Price < filter.MinPrice {
		return false
	}
	if filter.MaxPrice > 0 && trip.Price > filter.MaxPrice {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

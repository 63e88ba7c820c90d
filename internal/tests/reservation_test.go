package tests

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sotrama/internal/app"
	"sotrama/internal/config"
	"sotrama/internal/domain"
	"sotrama/internal/repository"
	"sotrama/internal/repository/sqlite"
	"sotrama/internal/service"
)

// ──────────────────────────────────────────────
// 1. RESERVATION AND SEAT INVENTORY
// ──────────────────────────────────────────────

func TestReservation_Create_DecrementsSeats(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	seedTrip(t, db, 1, 10)
	ctx := context.Background()

	tripRepo := sqlite.NewTripRepository(db)
	reservationRepo := sqlite.NewReservationRepository(db)
	svc := service.NewReservationService(db, tripRepo, reservationRepo, nil, nil)

	reservation, err := svc.CreateReservation(ctx, service.CreateReservationRequest{TripID: 1, Seats: 3})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if reservation.ID == 0 {
		t.Error("expected reservation ID to be assigned")
	}
	if reservation.Status != domain.ReservationStatusPending {
		t.Errorf("expected status pending, got %s", reservation.Status)
	}
	if reservation.PaymentStatus != domain.PaymentStatusUnpaid {
		t.Errorf("expected payment status unpaid, got %s", reservation.PaymentStatus)
	}

	trip, err := tripRepo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("failed to load trip: %v", err)
	}
	if trip.AvailableSeats != 7 {
		t.Errorf("expected 7 seats remaining, got %d", trip.AvailableSeats)
	}
}

func TestReservation_InsufficientSeats_NothingChanges(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	seedTrip(t, db, 1, 2)
	ctx := context.Background()

	tripRepo := sqlite.NewTripRepository(db)
	reservationRepo := sqlite.NewReservationRepository(db)
	svc := service.NewReservationService(db, tripRepo, reservationRepo, nil, nil)

	_, err := svc.CreateReservation(ctx, service.CreateReservationRequest{TripID: 1, Seats: 5})
	if !errors.Is(err, repository.ErrInsufficientSeats) {
		t.Fatalf("expected insufficient seats error, got: %v", err)
	}

	var seatsErr *repository.InsufficientSeatsError
	if !errors.As(err, &seatsErr) {
		t.Fatal("expected error to carry trip and remaining seat details")
	}
	if seatsErr.Remaining != 2 {
		t.Errorf("expected 2 remaining seats in error, got %d", seatsErr.Remaining)
	}

	// Seats untouched, no reservation row written.
	trip, err := tripRepo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("failed to load trip: %v", err)
	}
	if trip.AvailableSeats != 2 {
		t.Errorf("expected 2 seats remaining, got %d", trip.AvailableSeats)
	}

	count, err := reservationRepo.Count(ctx)
	if err != nil {
		t.Fatalf("failed to count reservations: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no reservations, got %d", count)
	}
}

func TestReservation_ExactRemainingSeats_Succeeds(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	seedTrip(t, db, 1, 4)
	ctx := context.Background()

	tripRepo := sqlite.NewTripRepository(db)
	reservationRepo := sqlite.NewReservationRepository(db)
	svc := service.NewReservationService(db, tripRepo, reservationRepo, nil, nil)

	if _, err := svc.CreateReservation(ctx, service.CreateReservationRequest{TripID: 1, Seats: 4}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	trip, err := tripRepo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("failed to load trip: %v", err)
	}
	if trip.AvailableSeats != 0 {
		t.Errorf("expected 0 seats remaining, got %d", trip.AvailableSeats)
	}

	// The next attempt for even one seat must fail.
	_, err = svc.CreateReservation(ctx, service.CreateReservationRequest{TripID: 1, Seats: 1})
	if !errors.Is(err, repository.ErrInsufficientSeats) {
		t.Fatalf("expected insufficient seats error, got: %v", err)
	}
}

func TestReservation_Cancel_ReturnsSeats(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	seedTrip(t, db, 1, 10)
	ctx := context.Background()

	tripRepo := sqlite.NewTripRepository(db)
	reservationRepo := sqlite.NewReservationRepository(db)
	svc := service.NewReservationService(db, tripRepo, reservationRepo, nil, nil)

	reservation, err := svc.CreateReservation(ctx, service.CreateReservationRequest{TripID: 1, Seats: 4})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if err := svc.CancelReservation(ctx, reservation.ID); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	trip, err := tripRepo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("failed to load trip: %v", err)
	}
	if trip.AvailableSeats != 10 {
		t.Errorf("expected 10 seats after cancel, got %d", trip.AvailableSeats)
	}

	if _, err := svc.GetReservation(ctx, reservation.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected reservation to be gone, got: %v", err)
	}
}

func TestReservation_CancelUnknown_Fails(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	seedTrip(t, db, 1, 10)

	tripRepo := sqlite.NewTripRepository(db)
	reservationRepo := sqlite.NewReservationRepository(db)
	svc := service.NewReservationService(db, tripRepo, reservationRepo, nil, nil)

	err := svc.CancelReservation(context.Background(), 99)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got: %v", err)
	}
}

func TestReservation_InvalidInput_Rejected(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	seedTrip(t, db, 1, 10)
	ctx := context.Background()

	tripRepo := sqlite.NewTripRepository(db)
	reservationRepo := sqlite.NewReservationRepository(db)
	svc := service.NewReservationService(db, tripRepo, reservationRepo, nil, nil)

	testCases := []struct {
		name    string
		req     service.CreateReservationRequest
		wantErr error
	}{
		{"zero seats", service.CreateReservationRequest{TripID: 1, Seats: 0}, service.ErrInvalidSeatCount},
		{"negative seats", service.CreateReservationRequest{TripID: 1, Seats: -2}, service.ErrInvalidSeatCount},
		{"zero trip id", service.CreateReservationRequest{TripID: 0, Seats: 1}, service.ErrInvalidTripID},
		{"unknown trip", service.CreateReservationRequest{TripID: 42, Seats: 1}, repository.ErrNotFound},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateReservation(ctx, tc.req)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got: %v", tc.wantErr, err)
			}
		})
	}
}

// ──────────────────────────────────────────────
// 2. SEAT CONSERVATION
// ──────────────────────────────────────────────

// Reserved seats plus available seats must always equal the trip's
// original capacity, across any mix of reservations and cancellations.
func TestReservation_SeatConservation(t *testing.T) {
	t.Parallel()

	const capacity = 20

	db := newTestDB(t)
	seedTrip(t, db, 1, capacity)
	ctx := context.Background()

	tripRepo := sqlite.NewTripRepository(db)
	reservationRepo := sqlite.NewReservationRepository(db)
	svc := service.NewReservationService(db, tripRepo, reservationRepo, nil, nil)

	var created []int64
	for _, seats := range []int64{3, 1, 5, 2} {
		r, err := svc.CreateReservation(ctx, service.CreateReservationRequest{TripID: 1, Seats: seats})
		if err != nil {
			t.Fatalf("reservation for %d seats failed: %v", seats, err)
		}
		created = append(created, r.ID)
	}

	// Cancel the second and fourth.
	if err := svc.CancelReservation(ctx, created[1]); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if err := svc.CancelReservation(ctx, created[3]); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	trip, err := tripRepo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("failed to load trip: %v", err)
	}

	reservations, err := reservationRepo.GetAll(ctx)
	if err != nil {
		t.Fatalf("failed to list reservations: %v", err)
	}

	var reserved int64
	for _, r := range reservations {
		reserved += r.Seats
	}

	if trip.AvailableSeats+reserved != capacity {
		t.Errorf("conservation violated: available=%d reserved=%d capacity=%d",
			trip.AvailableSeats, reserved, capacity)
	}
}

// A failed write after the seat decrement must roll the decrement back.
func TestReservation_FailedInsertRollsBackSeats(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	seedTrip(t, db, 1, 10)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("failed to begin tx: %v", err)
	}

	txTripRepo := sqlite.NewTripRepositoryWithTx(tx)
	if err := txTripRepo.AdjustSeats(ctx, 1, -2); err != nil {
		t.Fatalf("adjust failed: %v", err)
	}

	// Violates NOT NULL on nombrePlaces, like a malformed insert would.
	_, err = tx.ExecContext(ctx, `INSERT INTO reservations (voyageId, nombrePlaces) VALUES (?, NULL)`, 1)
	if err == nil {
		t.Fatal("expected insert to fail")
	}

	if err := tx.Rollback(); err != nil {
		t.Fatalf("rollback failed: %v", err)
	}

	trip, err := sqlite.NewTripRepository(db).GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("failed to load trip: %v", err)
	}
	if trip.AvailableSeats != 10 {
		t.Errorf("expected seats restored to 10, got %d", trip.AvailableSeats)
	}
}

// ──────────────────────────────────────────────
// 3. RESERVATION LISTING
// ──────────────────────────────────────────────

func TestReservation_ListWithTrips(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	seedTrip(t, db, 1, 10)
	ctx := context.Background()

	tripRepo := sqlite.NewTripRepository(db)
	reservationRepo := sqlite.NewReservationRepository(db)
	svc := service.NewReservationService(db, tripRepo, reservationRepo, nil, nil)

	if _, err := svc.CreateReservation(ctx, service.CreateReservationRequest{TripID: 1, Seats: 2}); err != nil {
		t.Fatalf("reservation failed: %v", err)
	}

	details, err := svc.ListReservationsWithTrips(ctx)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(details) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(details))
	}

	d := details[0]
	if d.Trip.Origin != "Bamako" || d.Trip.Destination != "Sikasso" {
		t.Errorf("unexpected trip in detail: %s -> %s", d.Trip.Origin, d.Trip.Destination)
	}
	if d.Agency.Name != "Bani Transport" {
		t.Errorf("unexpected agency in detail: %s", d.Agency.Name)
	}
}

func TestReservation_ListByStatus(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	seedTrip(t, db, 1, 10)
	ctx := context.Background()

	tripRepo := sqlite.NewTripRepository(db)
	reservationRepo := sqlite.NewReservationRepository(db)
	svc := service.NewReservationService(db, tripRepo, reservationRepo, nil, nil)

	if _, err := svc.CreateReservation(ctx, service.CreateReservationRequest{TripID: 1, Seats: 2}); err != nil {
		t.Fatalf("reservation failed: %v", err)
	}

	pending, err := svc.ListReservations(ctx, string(domain.ReservationStatusPending))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("expected 1 pending reservation, got %d", len(pending))
	}

	other, err := svc.ListReservations(ctx, "confirmed")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no confirmed reservations, got %d", len(other))
	}
}

// Concurrent reservations must serialize their seat checks: with the
// production database settings, racing requests can never read a stale
// seat count and overbook. Two handles on the same file stand in for
// separate server processes.
func TestReservation_ConcurrentRequests_NeverOverbook(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dbCfg := config.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "sotrama.db"),
		BusyTimeout: 5 * time.Second,
	}

	openHandle := func() *sql.DB {
		t.Helper()
		db, err := app.NewDatabase(ctx, dbCfg)
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		t.Cleanup(func() { _ = db.Close() })
		return db
	}

	db := openHandle()
	if err := sqlite.Initialize(ctx, db); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	const capacity = 5
	seedTrip(t, db, 1, capacity)

	handles := []*sql.DB{db, openHandle()}

	const attempts = 10
	var successes, refused int32
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		h := handles[i%len(handles)]
		wg.Add(1)
		go func(h *sql.DB) {
			defer wg.Done()

			tripRepo := sqlite.NewTripRepository(h)
			reservationRepo := sqlite.NewReservationRepository(h)
			svc := service.NewReservationService(h, tripRepo, reservationRepo, nil, nil)

			_, err := svc.CreateReservation(ctx, service.CreateReservationRequest{TripID: 1, Seats: 1})
			switch {
			case err == nil:
				atomic.AddInt32(&successes, 1)
			case errors.Is(err, repository.ErrInsufficientSeats):
				atomic.AddInt32(&refused, 1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(h)
	}
	wg.Wait()

	if successes != capacity {
		t.Errorf("expected %d successful reservations, got %d", capacity, successes)
	}
	if refused != attempts-capacity {
		t.Errorf("expected %d refused reservations, got %d", attempts-capacity, refused)
	}

	trip, err := sqlite.NewTripRepository(db).GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("failed to load trip: %v", err)
	}
	if trip.AvailableSeats != 0 {
		t.Errorf("expected 0 seats remaining, got %d", trip.AvailableSeats)
	}

	count, err := sqlite.NewReservationRepository(db).Count(ctx)
	if err != nil {
		t.Fatalf("failed to count reservations: %v", err)
	}
	if count != capacity {
		t.Errorf("expected %d reservations stored, got %d", capacity, count)
	}
}

func TestReservation_Update_PersistsFields(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	seedTrip(t, db, 1, 10)
	ctx := context.Background()

	tripRepo := sqlite.NewTripRepository(db)
	reservationRepo := sqlite.NewReservationRepository(db)
	svc := service.NewReservationService(db, tripRepo, reservationRepo, nil, nil)

	reservation, err := svc.CreateReservation(ctx, service.CreateReservationRequest{TripID: 1, Seats: 2})
	if err != nil {
		t.Fatalf("reservation failed: %v", err)
	}

	reservation.PaymentStatus = domain.PaymentStatusPaid
	if err := reservationRepo.Update(ctx, reservation); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, err := reservationRepo.GetByID(ctx, reservation.ID)
	if err != nil {
		t.Fatalf("failed to load reservation: %v", err)
	}
	if stored.PaymentStatus != domain.PaymentStatusPaid {
		t.Errorf("expected payment status paid, got %s", stored.PaymentStatus)
	}
	if stored.Seats != 2 {
		t.Errorf("expected 2 seats, got %d", stored.Seats)
	}

	missing := &domain.Reservation{ID: 999, TripID: 1, Seats: 1,
		Status: domain.ReservationStatusPending, PaymentStatus: domain.PaymentStatusUnpaid}
	if err := reservationRepo.Update(ctx, missing); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

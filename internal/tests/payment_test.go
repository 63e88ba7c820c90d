package tests

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"sotrama/internal/domain"
	"sotrama/internal/repository"
	"sotrama/internal/service"
)

// ──────────────────────────────────────────────
// 6. PAYMENT
// ──────────────────────────────────────────────

func newPaymentFixture() (*service.PaymentService, *MockReservationRepository, *MockTripRepository, *MockLockStore, *MockPSP) {
	tripRepo := NewMockTripRepository()
	reservationRepo := NewMockReservationRepository()
	lockStore := NewMockLockStore()
	psp := NewMockPSP()

	tripRepo.AddTrip(&domain.Trip{
		ID: 1, AgencyID: 1, Origin: "Bamako", Destination: "Sikasso",
		Date: "2025-07-15", Time: "08:00", Price: 5000, AvailableSeats: 10,
	})
	reservationRepo.AddReservation(&domain.Reservation{
		ID: 1, TripID: 1, Seats: 3,
		Status: domain.ReservationStatusPending, PaymentStatus: domain.PaymentStatusUnpaid,
		CreatedAt: time.Now().UTC(),
	})

	svc := service.NewPaymentService(reservationRepo, tripRepo, lockStore, psp, nil)
	return svc, reservationRepo, tripRepo, lockStore, psp
}

func TestPayment_Succeeds_MarksPaid(t *testing.T) {
	t.Parallel()

	svc, reservationRepo, _, lockStore, psp := newPaymentFixture()

	result, err := svc.Pay(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if result.AlreadyPaid {
		t.Error("expected fresh payment, got already paid")
	}
	// Amount is the trip price times the seat count.
	if result.Amount != 15000 {
		t.Errorf("expected amount 15000, got %d", result.Amount)
	}
	if result.Reservation.PaymentStatus != domain.PaymentStatusPaid {
		t.Errorf("expected paid, got %s", result.Reservation.PaymentStatus)
	}
	if psp.ChargeCallCount != 1 {
		t.Errorf("expected 1 charge, got %d", psp.ChargeCallCount)
	}
	if reservationRepo.UpdatePaymentStatusCallCount != 1 {
		t.Errorf("expected 1 status update, got %d", reservationRepo.UpdatePaymentStatusCallCount)
	}
	// Lock is released after the attempt.
	if lockStore.ReleaseCallCount != 1 {
		t.Errorf("expected lock released once, got %d", lockStore.ReleaseCallCount)
	}
}

func TestPayment_AlreadyPaid_IsIdempotent(t *testing.T) {
	t.Parallel()

	svc, _, _, _, psp := newPaymentFixture()
	ctx := context.Background()

	if _, err := svc.Pay(ctx, 1); err != nil {
		t.Fatalf("first payment failed: %v", err)
	}

	result, err := svc.Pay(ctx, 1)
	if err != nil {
		t.Fatalf("second payment failed: %v", err)
	}

	if !result.AlreadyPaid {
		t.Error("expected already paid")
	}
	if result.Amount != 15000 {
		t.Errorf("expected amount 15000, got %d", result.Amount)
	}
	// The provider must not be charged twice.
	if psp.ChargeCallCount != 1 {
		t.Errorf("expected 1 charge, got %d", psp.ChargeCallCount)
	}
}

func TestPayment_ConcurrentAttempt_Blocked(t *testing.T) {
	t.Parallel()

	svc, _, _, lockStore, psp := newPaymentFixture()

	// Another payment holds the lock.
	lockStore.HoldLock(1)

	_, err := svc.Pay(context.Background(), 1)
	if !errors.Is(err, service.ErrPaymentInProgress) {
		t.Fatalf("expected payment in progress, got: %v", err)
	}
	if lockStore.AcquireCallCount != 1 {
		t.Errorf("expected 1 lock attempt, got %d", lockStore.AcquireCallCount)
	}
	if psp.ChargeCallCount != 0 {
		t.Errorf("expected no charge, got %d", psp.ChargeCallCount)
	}
}

func TestPayment_Declined_LeavesReservationUnpaid(t *testing.T) {
	t.Parallel()

	svc, reservationRepo, _, _, psp := newPaymentFixture()
	psp.Decline = true

	_, err := svc.Pay(context.Background(), 1)
	if !errors.Is(err, service.ErrPaymentDeclined) {
		t.Fatalf("expected payment declined, got: %v", err)
	}

	reservation, err := reservationRepo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("failed to load reservation: %v", err)
	}
	if reservation.PaymentStatus != domain.PaymentStatusUnpaid {
		t.Errorf("expected unpaid after decline, got %s", reservation.PaymentStatus)
	}
}

func TestPayment_UnknownReservation_Fails(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newPaymentFixture()

	_, err := svc.Pay(context.Background(), 99)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got: %v", err)
	}
}

func TestPayment_InvalidID_Fails(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newPaymentFixture()

	_, err := svc.Pay(context.Background(), 0)
	if !errors.Is(err, service.ErrInvalidReservationID) {
		t.Fatalf("expected invalid reservation id, got: %v", err)
	}
}

func TestPayment_LockStoreError_Propagates(t *testing.T) {
	t.Parallel()

	svc, _, _, lockStore, psp := newPaymentFixture()
	redisDown := errors.New("connection refused")
	lockStore.AcquireError = redisDown

	_, err := svc.Pay(context.Background(), 1)
	if !errors.Is(err, redisDown) {
		t.Fatalf("expected lock store error, got: %v", err)
	}
	if psp.ChargeCallCount != 0 {
		t.Errorf("expected no charge, got %d", psp.ChargeCallCount)
	}
}

func TestPayment_ProviderError_Propagates(t *testing.T) {
	t.Parallel()

	svc, reservationRepo, _, lockStore, psp := newPaymentFixture()
	providerDown := errors.New("provider unreachable")
	psp.ChargeError = providerDown

	_, err := svc.Pay(context.Background(), 1)
	if !errors.Is(err, providerDown) {
		t.Fatalf("expected provider error, got: %v", err)
	}

	reservation, err := reservationRepo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("failed to load reservation: %v", err)
	}
	if reservation.PaymentStatus != domain.PaymentStatusUnpaid {
		t.Errorf("expected unpaid after provider error, got %s", reservation.PaymentStatus)
	}
	// Lock must be released even on the error path.
	if lockStore.ReleaseCallCount != 1 {
		t.Errorf("expected lock released once, got %d", lockStore.ReleaseCallCount)
	}
}

func TestPayment_StatusWriteError_Propagates(t *testing.T) {
	t.Parallel()

	svc, reservationRepo, _, lockStore, _ := newPaymentFixture()
	writeFailed := errors.New("disk I/O error")
	reservationRepo.UpdatePaymentStatusError = writeFailed

	_, err := svc.Pay(context.Background(), 1)
	if !errors.Is(err, writeFailed) {
		t.Fatalf("expected write error, got: %v", err)
	}
	if lockStore.ReleaseCallCount != 1 {
		t.Errorf("expected lock released once, got %d", lockStore.ReleaseCallCount)
	}
}

func TestPayment_TripLookupError_Propagates(t *testing.T) {
	t.Parallel()

	svc, _, tripRepo, _, psp := newPaymentFixture()
	lookupFailed := errors.New("database is locked")
	tripRepo.GetByIDError = lookupFailed

	_, err := svc.Pay(context.Background(), 1)
	if !errors.Is(err, lookupFailed) {
		t.Fatalf("expected lookup error, got: %v", err)
	}
	if psp.ChargeCallCount != 0 {
		t.Errorf("expected no charge, got %d", psp.ChargeCallCount)
	}
}

// ──────────────────────────────────────────────
// 7. TICKETS
// ──────────────────────────────────────────────

func newTicketFixture() (*service.TicketService, *MockReservationRepository) {
	tripRepo := NewMockTripRepository()
	reservationRepo := NewMockReservationRepository()
	agencyRepo := NewMockAgencyRepository()

	agencyRepo.AddAgency(&domain.Agency{ID: 1, Name: "Sonef Transport", City: "Bamako"})
	tripRepo.AddTrip(&domain.Trip{
		ID: 1, AgencyID: 1, Origin: "Bamako", Destination: "Gao",
		Date: "2025-07-20", Time: "05:00", Price: 15000, AvailableSeats: 40,
	})
	reservationRepo.AddReservation(&domain.Reservation{
		ID: 1, TripID: 1, Seats: 2,
		Status: domain.ReservationStatusPending, PaymentStatus: domain.PaymentStatusPaid,
		CreatedAt: time.Now().UTC(),
	})

	return service.NewTicketService(reservationRepo, tripRepo, agencyRepo), reservationRepo
}

func TestTicket_IssuedForPaidReservation(t *testing.T) {
	t.Parallel()

	svc, _ := newTicketFixture()

	ticket, err := svc.Issue(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if ticket.Reference == "" {
		t.Error("expected ticket reference to be set")
	}
	if ticket.Amount != 30000 {
		t.Errorf("expected amount 30000, got %d", ticket.Amount)
	}
	if ticket.AgencyName != "Sonef Transport" {
		t.Errorf("unexpected agency name: %s", ticket.AgencyName)
	}

	payload := ticket.QRPayload()
	if payload == "" {
		t.Fatal("expected QR payload")
	}
	for _, want := range []string{"SOTRAMA|", "Bamako->Gao", "R1", "30000FCFA"} {
		if !strings.Contains(payload, want) {
			t.Errorf("expected payload to contain %q, got %q", want, payload)
		}
	}
}

func TestTicket_RefusedForUnpaidReservation(t *testing.T) {
	t.Parallel()

	svc, reservationRepo := newTicketFixture()
	reservationRepo.AddReservation(&domain.Reservation{
		ID: 2, TripID: 1, Seats: 1,
		Status: domain.ReservationStatusPending, PaymentStatus: domain.PaymentStatusUnpaid,
		CreatedAt: time.Now().UTC(),
	})

	_, err := svc.Issue(context.Background(), 2)
	if !errors.Is(err, service.ErrReservationUnpaid) {
		t.Fatalf("expected unpaid error, got: %v", err)
	}
}

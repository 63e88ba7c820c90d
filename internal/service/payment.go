package service

import (
	"context"
	"time"

	"sotrama/internal/domain"
	"sotrama/internal/redis"
	"sotrama/internal/repository"
)

// PSP is the interface for a Payment Service Provider.
type PSP interface {
	Charge(ctx context.Context, amount int64) (bool, error)
}

// MockPSP is a stand-in payment provider until a mobile money
// integration exists.
type MockPSP struct{}

// NewMockPSP creates a new mock PSP.
func NewMockPSP() *MockPSP {
	return &MockPSP{}
}

// Charge simulates a payment charge. Always succeeds.
func (p *MockPSP) Charge(ctx context.Context, amount int64) (bool, error) {
	return true, nil
}

// PaymentLockTTL bounds how long a crashed payment attempt can block
// retries for the same reservation.
const PaymentLockTTL = 30 * time.Second

// PaymentService handles payment operations.
type PaymentService struct {
	reservationRepo     repository.ReservationRepository
	tripRepo            repository.TripRepository
	lockStore           redis.LockStoreInterface
	psp                 PSP
	notificationService *NotificationService
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	reservationRepo repository.ReservationRepository,
	tripRepo repository.TripRepository,
	lockStore redis.LockStoreInterface,
	psp PSP,
	notificationService *NotificationService,
) *PaymentService {
	return &PaymentService{
		reservationRepo:     reservationRepo,
		tripRepo:            tripRepo,
		lockStore:           lockStore,
		psp:                 psp,
		notificationService: notificationService,
	}
}

// PaymentResult contains the outcome of a payment attempt.
type PaymentResult struct {
	Reservation *domain.Reservation
	Amount      int64
	// AlreadyPaid is true when the reservation was paid before this call.
	// The provider is not charged again.
	AlreadyPaid bool
}

// Pay charges the payment provider for a reservation and marks it paid.
// Paying an already-paid reservation is idempotent. Concurrent attempts
// on the same reservation are serialized with a Redis lock.
func (s *PaymentService) Pay(ctx context.Context, reservationID int64) (*PaymentResult, error) {
	if reservationID <= 0 {
		return nil, ErrInvalidReservationID
	}

	if s.lockStore != nil {
		acquired, err := s.lockStore.AcquirePaymentLock(ctx, reservationID, PaymentLockTTL)
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, ErrPaymentInProgress
		}
		defer func() {
			_ = s.lockStore.ReleasePaymentLock(ctx, reservationID)
		}()
	}

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.GetByID(ctx, reservation.TripID)
	if err != nil {
		return nil, err
	}

	amount := trip.Price * reservation.Seats

	if reservation.PaymentStatus == domain.PaymentStatusPaid {
		return &PaymentResult{
			Reservation: reservation,
			Amount:      amount,
			AlreadyPaid: true,
		}, nil
	}

	success, err := s.psp.Charge(ctx, amount)
	if err != nil {
		return nil, err
	}

	if !success {
		// The reservation stays unpaid so the traveller can retry.
		return nil, ErrPaymentDeclined
	}

	if err := s.reservationRepo.UpdatePaymentStatus(ctx, reservationID, domain.PaymentStatusPaid); err != nil {
		return nil, err
	}
	reservation.PaymentStatus = domain.PaymentStatusPaid

	if s.notificationService != nil {
		_ = s.notificationService.NotifyPaymentSucceeded(ctx, reservation, amount)
	}

	return &PaymentResult{
		Reservation: reservation,
		Amount:      amount,
	}, nil
}

package redis

import (
	"context"
	"time"

	"sotrama/internal/domain"
)

// LockStoreInterface defines the interface for distributed payment locking.
type LockStoreInterface interface {
	AcquirePaymentLock(ctx context.Context, reservationID int64, ttl time.Duration) (bool, error)
	ReleasePaymentLock(ctx context.Context, reservationID int64) error
}

// SessionStoreInterface defines the interface for session persistence.
type SessionStoreInterface interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, phone string) (*domain.Session, error)
	Delete(ctx context.Context, phone string) error
}

// FavoriteStoreInterface defines the interface for favorite trip sets.
type FavoriteStoreInterface interface {
	Add(ctx context.Context, phone string, tripID int64) error
	Remove(ctx context.Context, phone string, tripID int64) error
	Members(ctx context.Context, phone string) ([]int64, error)
}

// Ensure concrete types implement interfaces.
var (
	_ LockStoreInterface     = (*LockStore)(nil)
	_ SessionStoreInterface  = (*SessionStore)(nil)
	_ FavoriteStoreInterface = (*FavoriteStore)(nil)
)

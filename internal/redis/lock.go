package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquirePaymentLock attempts to acquire a lock for the given reservation.
// Returns true if the lock was acquired, false if a payment is already
// in flight for that reservation.
func (s *LockStore) AcquirePaymentLock(ctx context.Context, reservationID int64, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:payment:%d", reservationID)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleasePaymentLock releases the lock for the given reservation.
func (s *LockStore) ReleasePaymentLock(ctx context.Context, reservationID int64) error {
	key := fmt.Sprintf("lock:payment:%d", reservationID)

	return s.client.Del(ctx, key).Err()
}

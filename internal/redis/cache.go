package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore handles trip catalog caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// TripCacheTTL is deliberately short: available seat counts change with
// every reservation, so the cached listing is only ever a few seconds old.
const TripCacheTTL = 30 * time.Second

const tripCacheKey = "cache:trips"

// CachedTrip represents a trip entry in the cached catalog listing.
type CachedTrip struct {
	ID             int64  `json:"id"`
	AgencyID       int64  `json:"agency_id"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Price          int64  `json:"price"`
	AvailableSeats int64  `json:"available_seats"`
}

// GetTrips retrieves the cached trip listing. A cache miss returns
// (nil, nil) so callers fall through to the database.
func (s *CacheStore) GetTrips(ctx context.Context) ([]CachedTrip, error) {
	data, err := s.client.Get(ctx, tripCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var trips []CachedTrip
	if err := json.Unmarshal(data, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// SetTrips stores the trip listing in cache.
func (s *CacheStore) SetTrips(ctx context.Context, trips []CachedTrip) error {
	data, err := json.Marshal(trips)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, tripCacheKey, data, TripCacheTTL).Err()
}

// InvalidateTrips removes the trip listing from cache. Called whenever
// a reservation, cancellation or catalog sync changes seat counts.
func (s *CacheStore) InvalidateTrips(ctx context.Context) error {
	return s.client.Del(ctx, tripCacheKey).Err()
}

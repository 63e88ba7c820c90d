package redis

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const favoriteKeyPrefix = "favorites:"

// FavoriteStore keeps each traveller's favorite trips as a Redis set
// keyed by phone number.
type FavoriteStore struct {
	client *redis.Client
}

// NewFavoriteStore creates a new FavoriteStore.
func NewFavoriteStore(client *redis.Client) *FavoriteStore {
	return &FavoriteStore{client: client}
}

// Add marks a trip as a favorite for the given phone number.
func (s *FavoriteStore) Add(ctx context.Context, phone string, tripID int64) error {
	return s.client.SAdd(ctx, favoriteKeyPrefix+phone, strconv.FormatInt(tripID, 10)).Err()
}

// Remove unmarks a trip as a favorite. Removing a trip that was never
// a favorite is a no-op.
func (s *FavoriteStore) Remove(ctx context.Context, phone string, tripID int64) error {
	return s.client.SRem(ctx, favoriteKeyPrefix+phone, strconv.FormatInt(tripID, 10)).Err()
}

// Members returns the favorite trip IDs for a phone number. Entries
// that do not parse as integers are skipped.
func (s *FavoriteStore) Members(ctx context.Context, phone string) ([]int64, error) {
	members, err := s.client.SMembers(ctx, favoriteKeyPrefix+phone).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"sotrama/internal/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore persists phone-keyed sessions in Redis.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save stores the session under its phone number. Sessions have no TTL:
// travellers stay logged in until they log out.
func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.Phone, data, 0).Err()
}

// Get retrieves the session for a phone number. A missing session
// returns (nil, nil).
func (s *SessionStore) Get(ctx context.Context, phone string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+phone).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete removes the session for a phone number.
func (s *SessionStore) Delete(ctx context.Context, phone string) error {
	return s.client.Del(ctx, sessionKeyPrefix+phone).Err()
}

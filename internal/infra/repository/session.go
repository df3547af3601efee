package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/grezzle/goblin-closet/internal/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps opaque session tokens in redis so every instance of the
// service resolves the same sessions.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func (s *SessionStore) Put(ctx context.Context, token string, identity domain.Identity, ttl time.Duration) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return errors.Wrap(err, "session marshal failed")
	}
	err = s.rdb.Set(ctx, sessionKeyPrefix+token, payload, ttl).Err()
	return errors.Wrap(err, "session put failed")
}

// Get returns (nil, nil) for unknown or expired tokens; only transport
// failures surface as errors.
func (s *SessionStore) Get(ctx context.Context, token string) (*domain.Identity, error) {
	payload, err := s.rdb.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "session get failed")
	}

	var identity domain.Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return nil, errors.Wrap(err, "session unmarshal failed")
	}
	return &identity, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	err := s.rdb.Del(ctx, sessionKeyPrefix+token).Err()
	return errors.Wrap(err, "session delete failed")
}

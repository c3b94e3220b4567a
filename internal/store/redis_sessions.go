package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
)

const (
	sessionKeyPrefix      = "session:"
	userSessionsKeyPrefix = "user_sessions:"
)

// redisSessionStore keeps one string key per session pointing at its user,
// and one set per user listing the session keys, so that signing out
// everywhere does not need a scan.
type redisSessionStore struct {
	client redis.Cmdable
	logger *logger.Logger
}

// NewRedisSessionStore constructs a [SessionStore] over client.
func NewRedisSessionStore(client redis.Cmdable, logger *logger.Logger) SessionStore {
	return &redisSessionStore{client: client, logger: logger}
}

func (s *redisSessionStore) Save(ctx context.Context, userID, key string, ttl time.Duration) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(key), userID, ttl)
		pipe.SAdd(ctx, userSessionsKey(userID), key)
		pipe.Expire(ctx, userSessionsKey(userID), ttl)
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*redisSessionStore.Save").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrSessionStore, err)
	}

	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, key string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionNotFound
		}
		s.logger.Err(err).Str("func", "*redisSessionStore.Get").Msg("error reading session")
		return "", fmt.Errorf("%w: %w", ErrSessionStore, err)
	}

	return userID, nil
}

func (s *redisSessionStore) DeleteAll(ctx context.Context, userID string) error {
	keys, err := s.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		s.logger.Err(err).Str("func", "*redisSessionStore.DeleteAll").Msg("error listing sessions")
		return fmt.Errorf("%w: %w", ErrSessionStore, err)
	}

	toDelete := make([]string, 0, len(keys)+1)
	for _, key := range keys {
		toDelete = append(toDelete, sessionKey(key))
	}
	toDelete = append(toDelete, userSessionsKey(userID))

	if err = s.client.Del(ctx, toDelete...).Err(); err != nil {
		s.logger.Err(err).Str("func", "*redisSessionStore.DeleteAll").Msg("error deleting sessions")
		return fmt.Errorf("%w: %w", ErrSessionStore, err)
	}

	return nil
}

func sessionKey(key string) string {
	return sessionKeyPrefix + key
}

func userSessionsKey(userID string) string {
	return userSessionsKeyPrefix + userID
}

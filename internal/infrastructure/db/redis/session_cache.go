package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionCache remembers the latest token issued to each user.
// Key format: users:<username>
type SessionCache struct {
	client  redis.UniversalClient
	timeout time.Duration
}

// NewSessionCache creates a SessionCache wrapping the given Redis client.
func NewSessionCache(client redis.UniversalClient) *SessionCache {
	return &SessionCache{client: client, timeout: defaultTimeout}
}

// Store replaces the user's cached token; it expires together with the token.
func (s *SessionCache) Store(ctx context.Context, username, token string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.client.Set(ctx, key(username), token, ttl).Err(); err != nil {
		return fmt.Errorf("session store: %w", err)
	}
	return nil
}

// Current returns the cached token, with ok=false when none is cached.
func (s *SessionCache) Current(ctx context.Context, username string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	token, err := s.client.Get(ctx, key(username)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session lookup: %w", err)
	}
	return token, true, nil
}

func (s *SessionCache) Drop(ctx context.Context, username string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.client.Del(ctx, key(username)).Err(); err != nil {
		return fmt.Errorf("session drop: %w", err)
	}
	return nil
}

func key(username string) string {
	return "users:" + username
}

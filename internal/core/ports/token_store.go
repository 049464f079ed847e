package ports

import (
	"context"
	"time"
)

// TokenBlacklist records tokens invalidated before their natural expiry.
type TokenBlacklist interface {
	Revoke(ctx context.Context, tokenID, username string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// SessionCache holds the single active token per user.
type SessionCache interface {
	Store(ctx context.Context, username, token string, ttl time.Duration) error
	// Current returns the cached token; ok is false when none is cached.
	Current(ctx context.Context, username string) (token string, ok bool, err error)
	Drop(ctx context.Context, username string) error
}

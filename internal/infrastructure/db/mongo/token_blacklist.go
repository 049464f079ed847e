package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TokenBlacklist stores revoked token ids until the token would have expired
// anyway; the TTL index on expires_at removes them afterwards.
type TokenBlacklist struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewTokenBlacklist(db *mongo.Database) *TokenBlacklist {
	return &TokenBlacklist{coll: db.Collection(collectionBlacklist), now: time.Now}
}

type invalidatedToken struct {
	TokenID       string    `bson:"token_id"`
	Username      string    `bson:"username"`
	InvalidatedAt time.Time `bson:"invalidated_at"`
	ExpiresAt     time.Time `bson:"expires_at"`
}

// Revoke is idempotent: revoking the same token twice keeps one entry.
func (b *TokenBlacklist) Revoke(ctx context.Context, tokenID, username string, expiresAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := invalidatedToken{
		TokenID:       tokenID,
		Username:      username,
		InvalidatedAt: b.now().UTC(),
		ExpiresAt:     expiresAt.UTC(),
	}
	_, err := b.coll.UpdateOne(ctx,
		bson.M{"token_id": tokenID},
		bson.M{"$setOnInsert": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (b *TokenBlacklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := b.coll.CountDocuments(ctx, bson.M{"token_id": tokenID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("check blacklist: %w", err)
	}
	return n > 0, nil
}

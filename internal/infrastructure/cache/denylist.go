package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records revoked refresh tokens until their natural expiry.
// Tokens are stored as SHA-256 digests so the raw credential never lands in
// Redis.
type TokenDenylist struct {
	client *redis.Client
}

func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

func denylistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "auth:revoked:" + hex.EncodeToString(sum[:])
}

// Revoke marks the token as unusable for the given duration. Revoking an
// already revoked token just refreshes the entry.
func (d *TokenDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing to persist.
		return nil
	}
	return d.client.Set(ctx, denylistKey(token), 1, ttl).Err()
}

// IsRevoked reports whether the token has been revoked.
func (d *TokenDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := d.client.Exists(ctx, denylistKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

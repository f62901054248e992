package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moneywise/backend/internal/application/adapter"
)

// denylistKeyPrefix namespaces revoked token entries in Redis.
const denylistKeyPrefix = "denylist:token:"

// redisTokenDenylist implements the adapter.TokenDenylist interface backed by Redis.
// Entries carry a TTL matching the token's remaining lifetime, so the denylist
// never grows beyond the set of tokens that could still be replayed.
type redisTokenDenylist struct {
	client *redis.Client
}

// NewRedisTokenDenylist creates a new Redis-backed token denylist.
func NewRedisTokenDenylist(client *redis.Client) adapter.TokenDenylist {
	return &redisTokenDenylist{
		client: client,
	}
}

// Revoke marks a token as revoked for the given duration.
func (d *redisTokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return d.client.Set(ctx, denylistKeyPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked checks whether a token has been revoked.
func (d *redisTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := d.client.Get(ctx, denylistKeyPrefix+tokenID).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

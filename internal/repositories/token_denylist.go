package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	mem "travelai/pkg/memcache"
)

const revokedTokenPrefix = "travelai_revoked_jwt:"

// TokenDenylist remembers logged-out token IDs until the tokens would have expired anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type redisTokenDenylist struct {
	rdb *redis.Client
}

func NewRedisTokenDenylist(rdb *redis.Client) TokenDenylist {
	return &redisTokenDenylist{rdb: rdb}
}

func (d *redisTokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, revokedTokenPrefix+tokenID, 1, ttl).Err()
}

func (d *redisTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.rdb.Exists(ctx, revokedTokenPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type memoryTokenDenylist struct {
	store *mem.Store
}

func NewMemoryTokenDenylist(store *mem.Store) TokenDenylist {
	return &memoryTokenDenylist{store: store}
}

func (d *memoryTokenDenylist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	d.store.Set(revokedTokenPrefix+tokenID, []byte{1}, ttl)
	return nil
}

func (d *memoryTokenDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return d.store.Exists(revokedTokenPrefix + tokenID), nil
}

package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/luxemoda/storefront-backend/pkg/redis"
)

// redisStore is the slice of the redis client the persistence layer needs.
type redisStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartKey(sessionID string) string
}

// RedisPersistence stores cart payloads as namespaced string keys with a TTL
// so abandoned carts age out on their own.
type RedisPersistence struct {
	store redisStore
	ttl   time.Duration
}

func NewRedisPersistence(store redisStore, ttl time.Duration) *RedisPersistence {
	return &RedisPersistence{store: store, ttl: ttl}
}

func (r *RedisPersistence) Load(ctx context.Context, sessionID string) ([]byte, error) {
	payload, err := r.store.Get(ctx, r.store.CartKey(sessionID))
	if err != nil {
		if redis.IsNil(err) {
			return nil, ErrNoRecord
		}
		return nil, fmt.Errorf("loading cart from redis: %w", err)
	}
	return []byte(payload), nil
}

func (r *RedisPersistence) Save(ctx context.Context, sessionID string, payload []byte) error {
	if err := r.store.Set(ctx, r.store.CartKey(sessionID), string(payload), r.ttl); err != nil {
		return fmt.Errorf("saving cart to redis: %w", err)
	}
	return nil
}

func (r *RedisPersistence) Delete(ctx context.Context, sessionID string) error {
	if err := r.store.Del(ctx, r.store.CartKey(sessionID)); err != nil {
		return fmt.Errorf("deleting cart from redis: %w", err)
	}
	return nil
}

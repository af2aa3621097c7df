// README: Resolved-rate memoization backed by Redis.
package rates

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache memoizes resolved rate cards by composite query key. Rates change
// rarely and are cheap to recompute, so a short TTL is enough and no
// invalidation hooks are needed.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, key string) (*RateCard, bool) {
	val, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var r RateCard
	if err := json.Unmarshal(val, &r); err != nil {
		return nil, false
	}
	return &r, true
}

func (c *Cache) Put(ctx context.Context, key string, r *RateCard) {
	val, err := json.Marshal(r)
	if err != nil {
		return
	}
	// Best effort; a cache miss later just recomputes.
	_ = c.redis.Set(ctx, key, val, c.ttl).Err()
}

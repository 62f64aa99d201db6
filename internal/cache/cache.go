// Package cache is an optional TTL read-through cache for availability
// responses. Cache failures are swallowed; the resolver is always the
// source of truth.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"horaires/internal/metrics"
)

// Cache wraps an optional Redis client. A nil Cache or a zero TTL
// disables caching entirely.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

// New returns a cache over the given client. client may be nil.
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: client, ttl: ttl}
}

// AvailabilityKey builds the cache key for one availability query.
func AvailabilityKey(clientID int64, startDate, endDate string) string {
	return fmt.Sprintf("horaires:availability:%d:%s:%s", clientID, startDate, endDate)
}

// Read fills out from the cache, reporting whether a value was found.
func (c *Cache) Read(ctx context.Context, key string, out any) bool {
	if c == nil || c.redis == nil || c.ttl <= 0 {
		return false
	}
	val, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		metrics.IncCache("miss")
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		metrics.IncCache("miss")
		return false
	}
	metrics.IncCache("hit")
	return true
}

// Write stores val under key with the configured TTL. Errors are ignored.
func (c *Cache) Write(ctx context.Context, key string, val any) {
	if c == nil || c.redis == nil || c.ttl <= 0 {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, key, data, c.ttl).Err()
}

// InvalidateClient drops cached availability for one client after a
// schedule edit.
func (c *Cache) InvalidateClient(ctx context.Context, clientID int64) {
	if c == nil || c.redis == nil {
		return
	}
	pattern := fmt.Sprintf("horaires:availability:%d:*", clientID)
	iter := c.redis.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		_ = c.redis.Del(ctx, iter.Val()).Err()
	}
}

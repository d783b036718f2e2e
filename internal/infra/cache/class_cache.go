package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fitclass-server/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const activeListingKey = "classes:active"

// ClassListingCache keeps the active-class listing in Redis. The client
// may be nil when Redis was unreachable at startup; every method then
// degrades to a pass-through so the engine keeps working without it.
type ClassListingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewClassListingCache(rdb *redis.Client, ttl time.Duration) *ClassListingCache {
	return &ClassListingCache{rdb: rdb, ttl: ttl}
}

func (c *ClassListingCache) GetActive(ctx context.Context) ([]*queries.ClassListItem, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, activeListingKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("class listing cache read failed", "error", err.Error())
		}
		return nil, false
	}

	var items []*queries.ClassListItem
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("class listing cache entry corrupt, dropping", "error", err.Error())
		c.InvalidateActive(ctx)
		return nil, false
	}
	return items, true
}

func (c *ClassListingCache) SetActive(ctx context.Context, items []*queries.ClassListItem) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, activeListingKey, raw, c.ttl).Err(); err != nil {
		slog.Warn("class listing cache write failed", "error", err.Error())
	}
}

func (c *ClassListingCache) InvalidateActive(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, activeListingKey).Err(); err != nil {
		slog.Warn("class listing cache invalidation failed", "error", err.Error())
	}
}

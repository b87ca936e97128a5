package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/types"
)

const summaryKey = "daxter:dashboard_summary"

// SummaryCache keeps the dashboard aggregate in Redis for a short TTL.
// A nil *SummaryCache is valid and always misses, so callers never need
// to branch on whether Redis is configured.
type SummaryCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *logger.Logger
}

func NewSummaryCache(rdb *redis.Client, ttl time.Duration, baseLog *logger.Logger) *SummaryCache {
	if rdb == nil {
		return nil
	}
	return &SummaryCache{
		rdb: rdb,
		ttl: ttl,
		log: baseLog.With("component", "SummaryCache"),
	}
}

func (c *SummaryCache) Get(ctx context.Context) (*types.DashboardSummary, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("Cache read failed, treating as miss", "error", err)
		}
		return nil, false
	}
	var summary types.DashboardSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		c.log.Warn("Cache entry corrupt, treating as miss", "error", err)
		return nil, false
	}
	return &summary, true
}

func (c *SummaryCache) Set(ctx context.Context, summary *types.DashboardSummary) {
	if c == nil || summary == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		c.log.Warn("Cache encode failed", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, summaryKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn("Cache write failed", "error", err)
	}
}

func (c *SummaryCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, summaryKey).Err(); err != nil {
		c.log.Warn("Cache invalidation failed", "error", err)
	}
}

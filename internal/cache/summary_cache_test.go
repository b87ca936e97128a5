package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/types"
)

func newTestCache(t *testing.T) *SummaryCache {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return NewSummaryCache(rdb, time.Minute, log)
}

func TestSummaryCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if _, ok := c.Get(ctx); ok {
		t.Fatalf("expected miss on empty cache")
	}

	last := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	stored := &types.DashboardSummary{
		TotalClients:           3,
		TotalTaxLiability:      6000,
		TotalRevenue:           18000,
		CompliancePendingCount: 2,
		LastIngestionTime:      &last,
	}
	c.Set(ctx, stored)

	got, ok := c.Get(ctx)
	if !ok {
		t.Fatalf("expected hit after set")
	}
	if got.TotalClients != 3 || got.TotalTaxLiability != 6000 || got.TotalRevenue != 18000 {
		t.Fatalf("cached aggregate changed: %+v", got)
	}
	if got.LastIngestionTime == nil || !got.LastIngestionTime.Equal(last) {
		t.Fatalf("cached last ingestion changed: %v", got.LastIngestionTime)
	}

	c.Invalidate(ctx)
	if _, ok := c.Get(ctx); ok {
		t.Fatalf("expected miss after invalidation")
	}
}

func TestSummaryCacheNilSafety(t *testing.T) {
	var c *SummaryCache
	ctx := context.Background()

	if _, ok := c.Get(ctx); ok {
		t.Fatalf("nil cache must always miss")
	}
	c.Set(ctx, &types.DashboardSummary{})
	c.Invalidate(ctx)
}

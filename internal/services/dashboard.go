package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/daxterlabs/daxter-backend/internal/cache"
	"github.com/daxterlabs/daxter-backend/internal/events"
	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/repos"
	"github.com/daxterlabs/daxter-backend/internal/types"
)

const (
	agentDetailLimit = 5
	defaultListLimit = 10
	maxListLimit     = 50
)

type DashboardService interface {
	ComputeSummary(ctx context.Context) (*types.DashboardSummary, error)
	AgentDetail(ctx context.Context, agentID string) (*types.AgentDetail, error)
	ListRecords(ctx context.Context, filter types.RecordFilter) ([]*types.FinancialRecord, error)
}

type dashboardService struct {
	log         *logger.Logger
	recordRepo  repos.RecordRepo
	summaryRepo repos.SummaryRepo
	cache       *cache.SummaryCache
	emitter     events.Emitter
}

func NewDashboardService(log *logger.Logger, recordRepo repos.RecordRepo, summaryRepo repos.SummaryRepo, summaryCache *cache.SummaryCache, emitter events.Emitter) DashboardService {
	serviceLog := log.With("service", "DashboardService")
	return &dashboardService{
		log:         serviceLog,
		recordRepo:  recordRepo,
		summaryRepo: summaryRepo,
		cache:       summaryCache,
		emitter:     emitter,
	}
}

// ComputeSummary rolls up the five dashboard metrics. Each metric is one
// independent read statement; they run concurrently and rely on the store's
// default read consistency.
func (ds *dashboardService) ComputeSummary(ctx context.Context) (*types.DashboardSummary, error) {
	if cached, ok := ds.cache.Get(ctx); ok {
		return cached, nil
	}

	out := &types.DashboardSummary{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := ds.recordRepo.CountDistinctClients(gctx, nil)
		out.TotalClients = n
		return err
	})
	g.Go(func() error {
		tax, revenue, err := ds.recordRepo.SumAmounts(gctx, nil)
		out.TotalTaxLiability = tax
		out.TotalRevenue = revenue
		return err
	})
	g.Go(func() error {
		n, err := ds.recordRepo.CountByStatus(gctx, nil, types.CompliancePending)
		out.CompliancePendingCount = n
		return err
	})
	g.Go(func() error {
		last, err := ds.recordRepo.MaxIngestedAt(gctx, nil)
		out.LastIngestionTime = last
		return err
	})
	if err := g.Wait(); err != nil {
		ds.log.Error("Dashboard aggregation failed", "error", err)
		return nil, storageWrap("dashboard aggregate", err)
	}

	ds.cache.Set(ctx, out)
	ds.emitter.Emit(ctx, "dashboard_aggregated",
		"total_clients", out.TotalClients,
		"compliance_pending_count", out.CompliancePendingCount,
	)
	return out, nil
}

// AgentDetail returns the five most recent records and summaries for one
// agent, newest first. An agent with neither is unknown to the system.
func (ds *dashboardService) AgentDetail(ctx context.Context, agentID string) (*types.AgentDetail, error) {
	records, err := ds.recordRepo.ListByAgent(ctx, nil, agentID, agentDetailLimit)
	if err != nil {
		return nil, storageWrap("list agent records", err)
	}
	summaries, err := ds.summaryRepo.ListByAgent(ctx, nil, agentID, agentDetailLimit)
	if err != nil {
		return nil, storageWrap("list agent summaries", err)
	}
	if len(records) == 0 && len(summaries) == 0 {
		return nil, NotFoundf("no data or summaries found for agent %s", agentID)
	}
	return &types.AgentDetail{
		AgentID:   agentID,
		Records:   records,
		Summaries: summaries,
	}, nil
}

func (ds *dashboardService) ListRecords(ctx context.Context, filter types.RecordFilter) ([]*types.FinancialRecord, error) {
	if filter.Offset < 0 {
		return nil, Validationf("offset must not be negative")
	}
	if filter.Limit == 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit < 1 || filter.Limit > maxListLimit {
		return nil, Validationf("limit must be between 1 and %d", maxListLimit)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, Validationf("status %q is not one of Pending, Approved, Rejected", filter.Status)
	}
	records, err := ds.recordRepo.List(ctx, nil, filter)
	if err != nil {
		return nil, storageWrap("list records", err)
	}
	return records, nil
}

package types

import (
	"time"
)

// DashboardSummary is the rolled-up metric set for the top-level view.
// Sums are 0.0 over an empty store; LastIngestionTime is null over an
// empty store.
type DashboardSummary struct {
	TotalClients           int64      `json:"total_clients"`
	TotalTaxLiability      float64    `json:"total_tax_liability"`
	TotalRevenue           float64    `json:"total_revenue"`
	CompliancePendingCount int64      `json:"compliance_pending_count"`
	LastIngestionTime      *time.Time `json:"last_ingestion_time"`
}

// AgentDetail is the per-agent drill-down: the most recent records and
// summaries, newest first. Either list may be empty, never both.
type AgentDetail struct {
	AgentID   string             `json:"agent_id"`
	Records   []*FinancialRecord `json:"records"`
	Summaries []*AISummary       `json:"summaries"`
}

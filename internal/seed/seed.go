// Package seed fills an empty store with demo data for local dashboards.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/types"
)

var statusCycle = []types.ComplianceStatus{
	types.CompliancePending,
	types.ComplianceApproved,
	types.ComplianceRejected,
}

// Run seeds agents*entriesPerAgent records plus a mock summary for every
// fourth entry. A store that already holds records is left untouched.
func Run(ctx context.Context, db *gorm.DB, log *logger.Logger, agents, entriesPerAgent int) error {
	seedLog := log.With("component", "seed")

	var existing int64
	if err := db.WithContext(ctx).Model(&types.FinancialRecord{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("count records: %w", err)
	}
	if existing > 0 {
		seedLog.Info("Store already contains records, skipping seeding", "count", existing)
		return nil
	}

	seedLog.Info("Seeding store", "agents", agents, "entries_per_agent", entriesPerAgent)
	now := time.Now().UTC()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := 1; i <= agents; i++ {
			agentID := fmt.Sprintf("AGENT-%03d", i)
			clientName := fmt.Sprintf("Client %d Global", i)

			for j := 0; j < entriesPerAgent; j++ {
				revenue := round2(50000 + rand.Float64()*450000)
				liability := round2(revenue * (0.1 + rand.Float64()*0.1))
				ingestedAt := now.Add(-time.Duration(i*3)*time.Hour - time.Duration(j*15)*time.Minute)
				periodEnd := ingestedAt.AddDate(0, 0, -30)
				periodStart := periodEnd.AddDate(0, 0, -90)
				status := statusCycle[j%len(statusCycle)]

				payload, err := json.Marshal(map[string]any{
					"filing_year": now.Year(),
					"quarter":     fmt.Sprintf("Q%d", (j%4)+1),
					"details":     fmt.Sprintf("Generated entry %d for agent %d", j+1, i),
				})
				if err != nil {
					return fmt.Errorf("marshal payload: %w", err)
				}

				record := &types.FinancialRecord{
					AgentID:          agentID,
					ClientName:       clientName,
					TaxLiability:     liability,
					TotalRevenue:     revenue,
					ComplianceStatus: status,
					RawPayload:       datatypes.JSON(payload),
					PeriodStart:      periodStart,
					PeriodEnd:        periodEnd,
					IngestedAt:       ingestedAt,
				}
				if err := tx.Create(record).Error; err != nil {
					return fmt.Errorf("insert record: %w", err)
				}

				if j%4 != 0 {
					continue
				}
				kind := types.SummaryKindFinancialOverview
				if status == types.CompliancePending {
					kind = types.SummaryKindComplianceAlert
				}
				summary := &types.AISummary{
					AgentID:        agentID,
					SummaryKind:    kind,
					Text:           fmt.Sprintf("Noted a %s for %s. Revenue was $%.2f. Assessment complete.", kind, clientName, revenue),
					SourceRecordID: &record.ID,
					CreatedAt:      ingestedAt.Add(time.Minute),
					ModelUsed:      "Mock-LLM-v2",
				}
				if err := tx.Create(summary).Error; err != nil {
					return fmt.Errorf("insert summary: %w", err)
				}
			}
		}
		return nil
	})
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

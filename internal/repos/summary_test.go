package repos

import (
	"context"
	"testing"
	"time"

	"github.com/daxterlabs/daxter-backend/internal/types"
)

func TestSummaryRepoCreateAndListByAgent(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t), newTestLogger(t))
	ctx := context.Background()

	base := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		summary := &types.AISummary{
			AgentID:     "AG1",
			SummaryKind: types.SummaryKindFinancialOverview,
			Text:        "overview text",
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
			ModelUsed:   "GPT-Sim-v1",
		}
		if err := repo.Create(ctx, nil, summary); err != nil {
			t.Fatalf("create: %v", err)
		}
		if summary.ID == 0 {
			t.Fatalf("expected assigned id")
		}
	}
	other := &types.AISummary{
		AgentID:     "AG2",
		SummaryKind: types.SummaryKindComplianceAlert,
		Text:        "alert text",
		CreatedAt:   base.Add(100 * time.Hour),
	}
	if err := repo.Create(ctx, nil, other); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.ListByAgent(ctx, nil, "AG1", 5)
	if err != nil {
		t.Fatalf("list by agent: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 summaries, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("expected descending created_at order at %d", i)
		}
	}

	empty, err := repo.ListByAgent(ctx, nil, "AG3", 5)
	if err != nil {
		t.Fatalf("list unknown agent: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no summaries for unknown agent, got %d", len(empty))
	}
}

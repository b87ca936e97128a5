package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/daxterlabs/daxter-backend/internal/events"
	"github.com/daxterlabs/daxter-backend/internal/repos"
	"github.com/daxterlabs/daxter-backend/internal/types"
)

func newIngestionService(t *testing.T, db *gorm.DB) IngestionService {
	t.Helper()
	log := newTestLogger(t)
	recordRepo := repos.NewRecordRepo(db, log)
	return NewIngestionService(log, recordRepo, NewWorkflowTrigger(log), events.Noop{}, nil)
}

func TestIngestPersistsRecordWithToken(t *testing.T) {
	db := newTestDB(t)
	svc := newIngestionService(t, db)
	ctx := context.Background()

	record, err := svc.Ingest(ctx, validInput())
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if record.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if record.TaxLiability != 1000 || record.TotalRevenue != 5000 {
		t.Fatalf("amounts changed: %v / %v", record.TaxLiability, record.TotalRevenue)
	}
	if record.ComplianceStatus != types.CompliancePending {
		t.Fatalf("expected default status Pending, got %s", record.ComplianceStatus)
	}
	if record.IsProcessedByAI {
		t.Fatalf("expected is_processed_by_ai false on ingest")
	}
	if record.IngestedAt.IsZero() {
		t.Fatalf("expected ingested_at assigned")
	}
	if record.WorkflowToken == nil || !strings.HasPrefix(*record.WorkflowToken, "wkflow-") {
		t.Fatalf("expected workflow token, got %v", record.WorkflowToken)
	}

	// The token must be on the stored row too, not only the returned value.
	var stored types.FinancialRecord
	if err := db.First(&stored, record.ID).Error; err != nil {
		t.Fatalf("load stored record: %v", err)
	}
	if stored.WorkflowToken == nil || *stored.WorkflowToken != *record.WorkflowToken {
		t.Fatalf("stored token mismatch: %v", stored.WorkflowToken)
	}
}

func TestIngestRejectsInvalidInput(t *testing.T) {
	db := newTestDB(t)
	svc := newIngestionService(t, db)
	ctx := context.Background()

	cases := map[string]func(*types.RecordInput){
		"empty agent id":     func(in *types.RecordInput) { in.AgentID = "  " },
		"empty client name":  func(in *types.RecordInput) { in.ClientName = "" },
		"negative liability": func(in *types.RecordInput) { in.TaxLiability = -1 },
		"negative revenue":   func(in *types.RecordInput) { in.TotalRevenue = -0.01 },
		"inverted period":    func(in *types.RecordInput) { in.PeriodStart, in.PeriodEnd = in.PeriodEnd, in.PeriodStart },
		"missing period":     func(in *types.RecordInput) { in.PeriodStart = types.FlexTime{} },
		"unknown status":     func(in *types.RecordInput) { in.ComplianceStatus = "Escalated" },
	}
	for name, mutate := range cases {
		input := validInput()
		mutate(&input)
		if _, err := svc.Ingest(ctx, input); !IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}

	var count int64
	if err := db.Model(&types.FinancialRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows after rejected inputs, got %d", count)
	}
}

func TestIngestAcceptsZeroAmounts(t *testing.T) {
	svc := newIngestionService(t, newTestDB(t))

	input := validInput()
	input.TaxLiability = 0
	input.TotalRevenue = 0
	record, err := svc.Ingest(context.Background(), input)
	if err != nil {
		t.Fatalf("ingest with zero amounts: %v", err)
	}
	if record.TaxLiability != 0 || record.TotalRevenue != 0 {
		t.Fatalf("expected zero amounts kept, got %v / %v", record.TaxLiability, record.TotalRevenue)
	}
}

func TestIngestStoresRawPayloadVerbatim(t *testing.T) {
	db := newTestDB(t)
	svc := newIngestionService(t, db)

	input := validInput()
	input.RawPayload = map[string]any{
		"filing_year": float64(2023),
		"quarter":     "Q4",
		"nested":      map[string]any{"source": "erp-export"},
	}
	record, err := svc.Ingest(context.Background(), input)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	var stored types.FinancialRecord
	if err := db.First(&stored, record.ID).Error; err != nil {
		t.Fatalf("load stored record: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(stored.RawPayload, &payload); err != nil {
		t.Fatalf("payload not valid JSON: %v", err)
	}
	if payload["quarter"] != "Q4" || payload["filing_year"] != float64(2023) {
		t.Fatalf("payload changed: %+v", payload)
	}
}

func TestIngestRoundsAmountsToCents(t *testing.T) {
	svc := newIngestionService(t, newTestDB(t))

	input := validInput()
	input.TaxLiability = 1234.567
	input.TotalRevenue = 999.994
	record, err := svc.Ingest(context.Background(), input)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if record.TaxLiability != 1234.57 {
		t.Fatalf("expected liability rounded to 1234.57, got %v", record.TaxLiability)
	}
	if record.TotalRevenue != 999.99 {
		t.Fatalf("expected revenue rounded to 999.99, got %v", record.TotalRevenue)
	}
}

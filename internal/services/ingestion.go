package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/daxterlabs/daxter-backend/internal/cache"
	"github.com/daxterlabs/daxter-backend/internal/events"
	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/repos"
	"github.com/daxterlabs/daxter-backend/internal/types"
)

type IngestionService interface {
	Ingest(ctx context.Context, input types.RecordInput) (*types.FinancialRecord, error)
}

type ingestionService struct {
	log        *logger.Logger
	recordRepo repos.RecordRepo
	trigger    WorkflowTrigger
	emitter    events.Emitter
	cache      *cache.SummaryCache
	now        func() time.Time
}

func NewIngestionService(log *logger.Logger, recordRepo repos.RecordRepo, trigger WorkflowTrigger, emitter events.Emitter, summaryCache *cache.SummaryCache) IngestionService {
	serviceLog := log.With("service", "IngestionService")
	return &ingestionService{
		log:        serviceLog,
		recordRepo: recordRepo,
		trigger:    trigger,
		emitter:    emitter,
		cache:      summaryCache,
		now:        time.Now,
	}
}

// Ingest validates and stores a record, then asks the WorkflowTrigger for a
// correlation token and stamps it on the row as a second write. The two
// writes are deliberately not one transaction: a row with a null token is a
// legitimate observable state.
func (is *ingestionService) Ingest(ctx context.Context, input types.RecordInput) (*types.FinancialRecord, error) {
	if err := validateRecordInput(&input); err != nil {
		return nil, err
	}

	record := &types.FinancialRecord{
		AgentID:          strings.TrimSpace(input.AgentID),
		ClientName:       strings.TrimSpace(input.ClientName),
		TaxLiability:     roundAmount(input.TaxLiability),
		TotalRevenue:     roundAmount(input.TotalRevenue),
		ComplianceStatus: input.ComplianceStatus,
		PeriodStart:      input.PeriodStart.Time,
		PeriodEnd:        input.PeriodEnd.Time,
		IngestedAt:       is.now().UTC(),
	}
	if input.RawPayload != nil {
		raw, err := json.Marshal(input.RawPayload)
		if err != nil {
			return nil, Validationf("raw_payload is not serializable: %v", err)
		}
		record.RawPayload = datatypes.JSON(raw)
	}

	if err := is.recordRepo.Create(ctx, nil, record); err != nil {
		is.log.Error("Record insert failed", "agent_id", record.AgentID, "error", err)
		return nil, storageWrap("insert record", err)
	}

	token, err := is.trigger.Trigger(ctx, record.ID)
	if err != nil {
		// The record stands without a token; callers observe it via re-fetch.
		is.log.Warn("Workflow trigger failed, record keeps null token", "record_id", record.ID, "error", err)
	} else if err := is.recordRepo.UpdateWorkflowToken(ctx, nil, record.ID, token); err != nil {
		is.log.Warn("Workflow token write failed, record keeps null token", "record_id", record.ID, "error", err)
	} else {
		record.WorkflowToken = &token
	}

	is.cache.Invalidate(ctx)
	is.emitter.Emit(ctx, "record_ingested",
		"record_id", record.ID,
		"agent_id", record.AgentID,
		"client_name", record.ClientName,
		"compliance_status", string(record.ComplianceStatus),
	)
	return record, nil
}

func validateRecordInput(input *types.RecordInput) error {
	if strings.TrimSpace(input.AgentID) == "" {
		return Validationf("agent_id must not be empty")
	}
	if strings.TrimSpace(input.ClientName) == "" {
		return Validationf("client_name must not be empty")
	}
	if input.TaxLiability < 0 {
		return Validationf("tax_liability must be non-negative, got %v", input.TaxLiability)
	}
	if input.TotalRevenue < 0 {
		return Validationf("total_revenue must be non-negative, got %v", input.TotalRevenue)
	}
	if input.PeriodStart.IsZero() || input.PeriodEnd.IsZero() {
		return Validationf("period_start and period_end are required")
	}
	if input.PeriodEnd.Before(input.PeriodStart.Time) {
		return Validationf("period_start must not be after period_end")
	}
	if input.ComplianceStatus == "" {
		input.ComplianceStatus = types.CompliancePending
	}
	if !input.ComplianceStatus.Valid() {
		return Validationf("compliance_status %q is not one of Pending, Approved, Rejected", input.ComplianceStatus)
	}
	return nil
}

// roundAmount normalizes money inputs to two decimal places.
func roundAmount(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

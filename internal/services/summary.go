package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/daxterlabs/daxter-backend/internal/events"
	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/repos"
	"github.com/daxterlabs/daxter-backend/internal/types"
)

type SummaryService interface {
	Create(ctx context.Context, req types.SummaryRequest) (*types.AISummary, error)
}

type summaryService struct {
	log         *logger.Logger
	summaryRepo repos.SummaryRepo
	recordRepo  repos.RecordRepo
	summarizer  Summarizer
	emitter     events.Emitter
	now         func() time.Time
}

func NewSummaryService(log *logger.Logger, summaryRepo repos.SummaryRepo, recordRepo repos.RecordRepo, summarizer Summarizer, emitter events.Emitter) SummaryService {
	serviceLog := log.With("service", "SummaryService")
	return &summaryService{
		log:         serviceLog,
		summaryRepo: summaryRepo,
		recordRepo:  recordRepo,
		summarizer:  summarizer,
		emitter:     emitter,
		now:         time.Now,
	}
}

// Create generates text through the Summarizer and persists the result.
// If generation succeeds but the write fails, the call fails in full and
// the text is discarded. A linked source record is flagged as processed
// in a follow-up write once the summary row exists.
func (ss *summaryService) Create(ctx context.Context, req types.SummaryRequest) (*types.AISummary, error) {
	agentID := strings.TrimSpace(req.AgentID)
	kind := strings.TrimSpace(req.SummaryKind)
	if agentID == "" {
		return nil, Validationf("agent_id must not be empty")
	}
	if kind == "" {
		return nil, Validationf("summary_kind must not be empty")
	}

	var sourceRecord *types.FinancialRecord
	if req.SourceRecordID != nil {
		record, err := ss.recordRepo.GetByID(ctx, nil, *req.SourceRecordID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Validationf("source record %d does not exist", *req.SourceRecordID)
		}
		if err != nil {
			return nil, storageWrap("load source record", err)
		}
		sourceRecord = record
	}

	text, err := ss.summarizer.Summarize(ctx, agentID, kind)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	summary := &types.AISummary{
		AgentID:        agentID,
		SummaryKind:    kind,
		Text:           text,
		SourceRecordID: req.SourceRecordID,
		CreatedAt:      ss.now().UTC(),
		ModelUsed:      ss.summarizer.Model(),
	}
	if sourceRecord != nil {
		summary.WorkflowToken = sourceRecord.WorkflowToken
	}

	if err := ss.summaryRepo.Create(ctx, nil, summary); err != nil {
		ss.log.Error("Summary insert failed, generated text discarded", "agent_id", agentID, "error", err)
		return nil, storageWrap("insert summary", err)
	}

	if sourceRecord != nil {
		if err := ss.recordRepo.MarkProcessed(ctx, nil, sourceRecord.ID); err != nil {
			// Summary row already stands; the flag catches up on a later pass.
			ss.log.Warn("Could not flag source record as processed", "record_id", sourceRecord.ID, "error", err)
		}
	}

	ss.emitter.Emit(ctx, "summary_created",
		"summary_id", summary.ID,
		"agent_id", agentID,
		"summary_kind", kind,
		"model_used", summary.ModelUsed,
	)
	return summary, nil
}

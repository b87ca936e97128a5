package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/types"
)

type SummaryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, summary *types.AISummary) error
	ListByAgent(ctx context.Context, tx *gorm.DB, agentID string, limit int) ([]*types.AISummary, error)
}

type summaryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSummaryRepo(db *gorm.DB, baseLog *logger.Logger) SummaryRepo {
	repoLog := baseLog.With("repo", "SummaryRepo")
	return &summaryRepo{db: db, log: repoLog}
}

func (sr *summaryRepo) Create(ctx context.Context, tx *gorm.DB, summary *types.AISummary) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Create(summary).Error
}

func (sr *summaryRepo) ListByAgent(ctx context.Context, tx *gorm.DB, agentID string, limit int) ([]*types.AISummary, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.AISummary
	if err := transaction.WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

package repos

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/types"
)

type RecordRepo interface {
	Create(ctx context.Context, tx *gorm.DB, record *types.FinancialRecord) error
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.FinancialRecord, error)
	UpdateWorkflowToken(ctx context.Context, tx *gorm.DB, id int64, token string) error
	MarkProcessed(ctx context.Context, tx *gorm.DB, id int64) error
	ListByAgent(ctx context.Context, tx *gorm.DB, agentID string, limit int) ([]*types.FinancialRecord, error)
	List(ctx context.Context, tx *gorm.DB, filter types.RecordFilter) ([]*types.FinancialRecord, error)
	CountDistinctClients(ctx context.Context, tx *gorm.DB) (int64, error)
	SumAmounts(ctx context.Context, tx *gorm.DB) (taxTotal float64, revenueTotal float64, err error)
	CountByStatus(ctx context.Context, tx *gorm.DB, status types.ComplianceStatus) (int64, error)
	MaxIngestedAt(ctx context.Context, tx *gorm.DB) (*time.Time, error)
}

type recordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecordRepo(db *gorm.DB, baseLog *logger.Logger) RecordRepo {
	repoLog := baseLog.With("repo", "RecordRepo")
	return &recordRepo{db: db, log: repoLog}
}

func (rr *recordRepo) Create(ctx context.Context, tx *gorm.DB, record *types.FinancialRecord) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).Create(record).Error
}

func (rr *recordRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.FinancialRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var result types.FinancialRecord
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (rr *recordRepo) UpdateWorkflowToken(ctx context.Context, tx *gorm.DB, id int64, token string) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.FinancialRecord{}).
		Where("id = ?", id).
		Update("workflow_token", token).Error
}

func (rr *recordRepo) MarkProcessed(ctx context.Context, tx *gorm.DB, id int64) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.FinancialRecord{}).
		Where("id = ?", id).
		Update("is_processed_by_ai", true).Error
}

func (rr *recordRepo) ListByAgent(ctx context.Context, tx *gorm.DB, agentID string, limit int) ([]*types.FinancialRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.FinancialRecord
	if err := transaction.WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("ingested_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *recordRepo) List(ctx context.Context, tx *gorm.DB, filter types.RecordFilter) ([]*types.FinancialRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	query := transaction.WithContext(ctx).Model(&types.FinancialRecord{})
	if filter.From != nil {
		query = query.Where("ingested_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("ingested_at <= ?", *filter.To)
	}
	if filter.Status != "" {
		query = query.Where("compliance_status = ?", filter.Status)
	}
	var results []*types.FinancialRecord
	if err := query.
		Order("ingested_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *recordRepo) CountDistinctClients(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.FinancialRecord{}).
		Distinct("client_name").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (rr *recordRepo) SumAmounts(ctx context.Context, tx *gorm.DB) (float64, float64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var row struct {
		TaxTotal     float64
		RevenueTotal float64
	}
	if err := transaction.WithContext(ctx).
		Model(&types.FinancialRecord{}).
		Select("COALESCE(SUM(tax_liability), 0) AS tax_total, COALESCE(SUM(total_revenue), 0) AS revenue_total").
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.TaxTotal, row.RevenueTotal, nil
}

func (rr *recordRepo) CountByStatus(ctx context.Context, tx *gorm.DB, status types.ComplianceStatus) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.FinancialRecord{}).
		Where("compliance_status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (rr *recordRepo) MaxIngestedAt(ctx context.Context, tx *gorm.DB) (*time.Time, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var result types.FinancialRecord
	err := transaction.WithContext(ctx).
		Select("ingested_at").
		Order("ingested_at DESC").
		Take(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	last := result.IngestedAt
	return &last, nil
}

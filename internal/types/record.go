package types

import (
	"time"

	"gorm.io/datatypes"
)

type ComplianceStatus string

const (
	CompliancePending  ComplianceStatus = "Pending"
	ComplianceApproved ComplianceStatus = "Approved"
	ComplianceRejected ComplianceStatus = "Rejected"
)

func (s ComplianceStatus) Valid() bool {
	switch s {
	case CompliancePending, ComplianceApproved, ComplianceRejected:
		return true
	default:
		return false
	}
}

// FinancialRecord is one ingested filing-period entry from an agent source.
type FinancialRecord struct {
	ID               int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	AgentID          string           `gorm:"index;not null;column:agent_id" json:"agent_id"`
	ClientName       string           `gorm:"index;not null;column:client_name" json:"client_name"`
	TaxLiability     float64          `gorm:"not null;column:tax_liability" json:"tax_liability"`
	TotalRevenue     float64          `gorm:"not null;column:total_revenue" json:"total_revenue"`
	ComplianceStatus ComplianceStatus `gorm:"not null;default:'Pending';column:compliance_status" json:"compliance_status"`
	RawPayload       datatypes.JSON   `gorm:"column:raw_payload" json:"raw_payload,omitempty"`
	PeriodStart      time.Time        `gorm:"not null;column:period_start" json:"period_start"`
	PeriodEnd        time.Time        `gorm:"not null;column:period_end" json:"period_end"`
	IngestedAt       time.Time        `gorm:"index;not null;column:ingested_at" json:"ingested_at"`
	IsProcessedByAI  bool             `gorm:"not null;default:false;column:is_processed_by_ai" json:"is_processed_by_ai"`
	WorkflowToken    *string          `gorm:"column:workflow_token" json:"workflow_token"`
}

func (FinancialRecord) TableName() string {
	return "financial_record"
}

// RecordInput is the request body accepted by the ingestion endpoint.
type RecordInput struct {
	AgentID          string           `json:"agent_id"`
	ClientName       string           `json:"client_name"`
	TaxLiability     float64          `json:"tax_liability"`
	TotalRevenue     float64          `json:"total_revenue"`
	ComplianceStatus ComplianceStatus `json:"compliance_status"`
	RawPayload       map[string]any   `json:"raw_payload"`
	PeriodStart      FlexTime         `json:"period_start"`
	PeriodEnd        FlexTime         `json:"period_end"`
}

// RecordFilter narrows record listings. Zero-value Limit means the
// service default.
type RecordFilter struct {
	Offset int
	Limit  int
	From   *time.Time
	To     *time.Time
	Status ComplianceStatus
}

package types

import (
	"time"
)

// Well-known summary kinds. The column is free-form, these are the ones
// the simulated summarizer distinguishes.
const (
	SummaryKindComplianceAlert   = "Compliance_Alert"
	SummaryKindFinancialOverview = "Financial_Overview"
)

// AISummary is one generated textual artifact describing or alerting on
// an agent's data. Rows are immutable after creation.
type AISummary struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AgentID        string    `gorm:"index;not null;column:agent_id" json:"agent_id"`
	SummaryKind    string    `gorm:"not null;column:summary_kind" json:"summary_kind"`
	Text           string    `gorm:"type:text;not null;column:text" json:"text"`
	SourceRecordID *int64    `gorm:"column:source_record_id" json:"source_record_id"`
	WorkflowToken  *string   `gorm:"column:workflow_token" json:"workflow_token"`
	CreatedAt      time.Time `gorm:"index;not null;column:created_at" json:"created_at"`
	ModelUsed      string    `gorm:"column:model_used" json:"model_used"`
}

func (AISummary) TableName() string {
	return "ai_summary"
}

// SummaryRequest is the request body accepted by the summary endpoint.
// SourceRecordID is optional; when set, the originating record is linked
// and flagged as processed.
type SummaryRequest struct {
	AgentID        string `json:"agent_id"`
	SummaryKind    string `json:"summary_kind"`
	SourceRecordID *int64 `json:"source_record_id"`
}

package execution

import (
	"time"

	"github.com/google/uuid"

	"github.com/modelshift-ai/modelshift-gateway/pkg/domain"
)

// Execution is one proxied completion request, successful or not. Records
// are written best-effort after the upstream exchange and served back through
// the history API.
type Execution struct {
	ID            uuid.UUID           `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID           `json:"user_id" gorm:"type:uuid;index"`
	Provider      string              `json:"provider" gorm:"index"`
	Model         string              `json:"model"`
	Prompt        string              `json:"prompt"`
	Response      string              `json:"response"`
	Parameters    domain.JSONMap      `json:"parameters" gorm:"type:jsonb"`
	Success       bool                `json:"success"`
	ErrorCategory string              `json:"error_category,omitempty"`
	ErrorMessage  string              `json:"error_message,omitempty"`
	LatencyMs     int64               `json:"latency_ms"`
	Usage         TokenUsage          `json:"usage" gorm:"embedded;embeddedPrefix:usage_"`
	EstimatedCost float64             `json:"estimated_cost"`
	CreatedAt     time.Time           `json:"created_at" gorm:"index"`
}

type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

func (e Execution) TableName() string {
	return "public.executions"
}

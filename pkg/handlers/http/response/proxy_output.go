package response

import (
	executionDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/execution"
)

// ProxyOutput is the body of a proxy response, success or failure. Metrics
// are included for both outcomes so clients can surface latency and usage.
type ProxyOutput struct {
	Success  bool          `json:"success"`
	Response string        `json:"response,omitempty"`
	Error    *ProxyError   `json:"error,omitempty"`
	Metrics  *ProxyMetrics `json:"metrics,omitempty"`
}

type ProxyError struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type ProxyMetrics struct {
	Provider         string  `json:"provider"`
	Model            string  `json:"model"`
	LatencyMs        int64   `json:"latency_ms"`
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	TotalTokens      int     `json:"total_tokens"`
	EstimatedCost    float64 `json:"estimated_cost"`
}

func NewProxyOutput(record *executionDomain.Execution) ProxyOutput {
	out := ProxyOutput{
		Success:  record.Success,
		Response: record.Response,
		Metrics: &ProxyMetrics{
			Provider:         record.Provider,
			Model:            record.Model,
			LatencyMs:        record.LatencyMs,
			PromptTokens:     record.Usage.PromptTokens,
			CompletionTokens: record.Usage.CompletionTokens,
			TotalTokens:      record.Usage.TotalTokens,
			EstimatedCost:    record.EstimatedCost,
		},
	}
	if !record.Success {
		out.Error = &ProxyError{
			Category: record.ErrorCategory,
			Message:  record.ErrorMessage,
		}
	}
	return out
}

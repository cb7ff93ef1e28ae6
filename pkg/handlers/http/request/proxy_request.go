package request

// ProxyRequest is the body of POST /api/v1/proxy.
type ProxyRequest struct {
	Provider     string                 `json:"provider"`
	Prompt       string                 `json:"prompt"`
	Model        string                 `json:"model,omitempty"`
	SystemPrompt string                 `json:"system_prompt,omitempty"`
	Parameters   map[string]interface{} `json:"parameters,omitempty"`
}

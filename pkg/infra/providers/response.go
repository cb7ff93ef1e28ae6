package providers

// NoResponsePlaceholder is returned as the completion text when the
// configured response path resolves to nothing in an otherwise successful
// upstream reply.
const NoResponsePlaceholder = "[no response text returned]"

type CompletionResponse struct {
	ID       string `json:"id"`
	Model    string `json:"model"`
	Response string `json:"response"`
	Usage    Usage  `json:"usage"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

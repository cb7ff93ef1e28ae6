package request

type CreateProviderKeyRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
}

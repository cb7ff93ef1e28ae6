package response

import (
	"time"

	"github.com/google/uuid"

	providerkeyDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/providerkey"
)

// ProviderKeyOutput is the API view of a stored key. The encrypted key
// material never leaves the server.
type ProviderKeyOutput struct {
	ID        uuid.UUID `json:"id"`
	Provider  string    `json:"provider"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewProviderKeyOutput(key *providerkeyDomain.ProviderKey) ProviderKeyOutput {
	return ProviderKeyOutput{
		ID:        key.ID,
		Provider:  key.Provider,
		Active:    key.Active,
		CreatedAt: key.CreatedAt,
		UpdatedAt: key.UpdatedAt,
	}
}

func NewProviderKeyListOutput(keys []providerkeyDomain.ProviderKey) []ProviderKeyOutput {
	out := make([]ProviderKeyOutput, 0, len(keys))
	for i := range keys {
		out = append(out, NewProviderKeyOutput(&keys[i]))
	}
	return out
}

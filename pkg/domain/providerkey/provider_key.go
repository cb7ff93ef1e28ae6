package providerkey

import (
	"time"

	"github.com/google/uuid"
)

// ProviderKey is a user's stored credential for one upstream provider. The
// key material is encrypted before it reaches this struct; plaintext only
// exists transiently in the request path.
type ProviderKey struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;index:idx_provider_keys_user_provider"`
	Provider     string    `json:"provider" gorm:"index:idx_provider_keys_user_provider"`
	EncryptedKey string    `json:"encrypted_key" gorm:"column:encrypted_key"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (k ProviderKey) TableName() string {
	return "public.provider_keys"
}

func (k ProviderKey) IsValid() bool {
	return k.Active && k.EncryptedKey != ""
}

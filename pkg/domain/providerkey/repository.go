package providerkey

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, key *ProviderKey) error
	Get(ctx context.Context, id uuid.UUID) (*ProviderKey, error)
	GetActiveByUserAndProvider(ctx context.Context, userID uuid.UUID, provider string) (*ProviderKey, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ProviderKey, error)
	Update(ctx context.Context, key *ProviderKey) error
	Delete(ctx context.Context, id uuid.UUID) error
}

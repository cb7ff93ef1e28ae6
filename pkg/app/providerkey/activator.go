package providerkey

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/modelshift-ai/modelshift-gateway/pkg/domain"
	providerkeyDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/providerkey"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/cache"
)

//go:generate mockery --name=Activator --dir=. --output=./mocks --filename=provider_key_activator_mock.go --case=underscore --with-expecter
type Activator interface {
	Activate(ctx context.Context, userID, keyID uuid.UUID) (*providerkeyDomain.ProviderKey, error)
}

type activator struct {
	repo   providerkeyDomain.Repository
	cache  cache.Client
	logger *logrus.Logger
}

func NewActivator(
	repository providerkeyDomain.Repository,
	c cache.Client,
	logger *logrus.Logger,
) Activator {
	return &activator{
		repo:   repository,
		cache:  c,
		logger: logger,
	}
}

// Activate makes the given key the active one for its provider. Only one
// key per user and provider is active at a time.
func (s *activator) Activate(ctx context.Context, userID, keyID uuid.UUID) (*providerkeyDomain.ProviderKey, error) {
	entity, err := s.repo.Get(ctx, keyID)
	if err != nil {
		return nil, err
	}
	if entity.UserID != userID {
		return nil, domain.NewNotFoundError("provider key", keyID)
	}
	if entity.Active {
		return entity, nil
	}

	current, err := s.repo.GetActiveByUserAndProvider(ctx, userID, entity.Provider)
	if err != nil && !errors.Is(err, domain.ErrNoActiveProviderKey) {
		return nil, err
	}
	if current != nil {
		current.Active = false
		if err := s.repo.Update(ctx, current); err != nil {
			return nil, fmt.Errorf("failed to deactivate previous key: %w", err)
		}
	}

	entity.Active = true
	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, err
	}

	evictProviderKey(ctx, s.cache, userID, entity.Provider, s.logger)
	return entity, nil
}

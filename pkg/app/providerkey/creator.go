package providerkey

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/modelshift-ai/modelshift-gateway/pkg/domain"
	providerkeyDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/providerkey"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/cache"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/secrets"
)

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=provider_key_creator_mock.go --case=underscore --with-expecter
type Creator interface {
	Create(ctx context.Context, userID uuid.UUID, provider, apiKey string) (*providerkeyDomain.ProviderKey, error)
}

type creator struct {
	repo      providerkeyDomain.Repository
	encryptor secrets.Encryptor
	cache     cache.Client
	logger    *logrus.Logger
}

func NewCreator(
	repository providerkeyDomain.Repository,
	encryptor secrets.Encryptor,
	c cache.Client,
	logger *logrus.Logger,
) Creator {
	return &creator{
		repo:      repository,
		encryptor: encryptor,
		cache:     c,
		logger:    logger,
	}
}

// Create stores a new key for the provider and makes it the active one,
// deactivating whichever key held that role before.
func (s *creator) Create(ctx context.Context, userID uuid.UUID, provider, apiKey string) (*providerkeyDomain.ProviderKey, error) {
	if apiKey == "" {
		return nil, errors.New("api key cannot be empty")
	}

	encrypted, err := s.encryptor.Encrypt(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt api key: %w", err)
	}

	current, err := s.repo.GetActiveByUserAndProvider(ctx, userID, provider)
	if err != nil && !errors.Is(err, domain.ErrNoActiveProviderKey) {
		return nil, err
	}
	if current != nil {
		current.Active = false
		if err := s.repo.Update(ctx, current); err != nil {
			return nil, fmt.Errorf("failed to deactivate previous key: %w", err)
		}
	}

	now := time.Now()
	entity := &providerkeyDomain.ProviderKey{
		ID:           uuid.New(),
		UserID:       userID,
		Provider:     provider,
		EncryptedKey: encrypted,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	evictProviderKey(ctx, s.cache, userID, provider, s.logger)
	return entity, nil
}

// evictProviderKey drops both cache layers so the next lookup hits the
// repository and sees the new active key.
func evictProviderKey(ctx context.Context, c cache.Client, userID uuid.UUID, provider string, logger *logrus.Logger) {
	if m := c.GetTTLMap(cache.ProviderKeyTTLName); m != nil {
		m.Delete(userID.String() + ":" + provider)
	}
	if err := c.DeleteProviderKey(ctx, userID.String(), provider); err != nil {
		logger.WithError(err).Warn("failed to invalidate provider key cache")
	}
}

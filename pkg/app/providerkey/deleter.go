package providerkey

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/modelshift-ai/modelshift-gateway/pkg/domain"
	providerkeyDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/providerkey"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/cache"
)

//go:generate mockery --name=Deleter --dir=. --output=./mocks --filename=provider_key_deleter_mock.go --case=underscore --with-expecter
type Deleter interface {
	Delete(ctx context.Context, userID, keyID uuid.UUID) error
}

type deleter struct {
	repo   providerkeyDomain.Repository
	cache  cache.Client
	logger *logrus.Logger
}

func NewDeleter(
	repository providerkeyDomain.Repository,
	c cache.Client,
	logger *logrus.Logger,
) Deleter {
	return &deleter{
		repo:   repository,
		cache:  c,
		logger: logger,
	}
}

func (s *deleter) Delete(ctx context.Context, userID, keyID uuid.UUID) error {
	entity, err := s.repo.Get(ctx, keyID)
	if err != nil {
		return err
	}
	if entity.UserID != userID {
		return domain.NewNotFoundError("provider key", keyID)
	}

	if err := s.repo.Delete(ctx, keyID); err != nil {
		return err
	}

	evictProviderKey(ctx, s.cache, userID, entity.Provider, s.logger)
	return nil
}

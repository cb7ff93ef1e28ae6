package providerkey

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/providerkey"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/cache"
)

var ErrInvalidCacheType = errors.New("invalid type assertion for provider key model")

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=provider_key_finder_mock.go --case=underscore --with-expecter
type Finder interface {
	FindActive(ctx context.Context, userID uuid.UUID, provider string) (*domain.ProviderKey, error)
}

type finder struct {
	repo        domain.Repository
	cache       cache.Client
	memoryCache *cache.TTLMap
	logger      *logrus.Logger
}

func NewFinder(
	repository domain.Repository,
	c cache.Client,
	logger *logrus.Logger,
) Finder {
	memoryCache := c.GetTTLMap(cache.ProviderKeyTTLName)
	if memoryCache == nil {
		memoryCache = c.CreateTTLMap(cache.ProviderKeyTTLName, 5*time.Minute)
	}
	return &finder{
		repo:        repository,
		cache:       c,
		logger:      logger,
		memoryCache: memoryCache,
	}
}

// FindActive resolves the key used to call a provider on behalf of a user.
// It checks the in-process TTL map, then the distributed cache, then the
// repository; hits are written back to the faster layers.
func (f *finder) FindActive(ctx context.Context, userID uuid.UUID, provider string) (*domain.ProviderKey, error) {
	memoryKey := userID.String() + ":" + provider

	if entity, err := f.getFromMemoryCache(memoryKey); err == nil {
		return entity, nil
	} else if !errors.Is(err, ErrInvalidCacheType) {
		f.logger.WithError(err).Debug("memory cache read provider key failure")
	}

	if cached, err := f.cache.GetProviderKey(ctx, userID.String(), provider); err == nil && cached != nil {
		f.memoryCache.Set(memoryKey, cached)
		return cached, nil
	} else if err != nil {
		f.logger.WithError(err).Warn("distributed cache read provider key failure")
	}

	entity, err := f.repo.GetActiveByUserAndProvider(ctx, userID, provider)
	if err != nil {
		return nil, err
	}

	f.memoryCache.Set(memoryKey, entity)
	if err := f.cache.SaveProviderKey(ctx, entity); err != nil {
		f.logger.WithError(err).Error("failed to save provider key to distributed cache")
	}
	return entity, nil
}

func (f *finder) getFromMemoryCache(key string) (*domain.ProviderKey, error) {
	cachedValue, found := f.memoryCache.Get(key)
	if !found {
		return nil, errors.New("provider key not found in memory cache")
	}

	entity, ok := cachedValue.(*domain.ProviderKey)
	if !ok {
		return nil, ErrInvalidCacheType
	}

	return entity, nil
}

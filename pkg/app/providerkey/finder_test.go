package providerkey_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appProviderKey "github.com/modelshift-ai/modelshift-gateway/pkg/app/providerkey"
	"github.com/modelshift-ai/modelshift-gateway/pkg/domain"
	providerkeyDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/providerkey"
	providerkeyMocks "github.com/modelshift-ai/modelshift-gateway/pkg/domain/providerkey/mocks"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/cache"
)

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestFinder_FindActive_RepositoryHitIsCached(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	redisMock.MatchExpectationsInOrder(false)
	redisMock.Regexp().ExpectGet(".*").RedisNil()
	redisMock.Regexp().ExpectSet(".*", ".*", 5*time.Minute).SetVal("OK")

	c := cache.NewClientWithRedis(db)
	repo := new(providerkeyMocks.MockRepository)
	finder := appProviderKey.NewFinder(repo, c, discardLogger())

	userID := uuid.New()
	stored := &providerkeyDomain.ProviderKey{
		ID:           uuid.New(),
		UserID:       userID,
		Provider:     "openai",
		EncryptedKey: "enc",
		Active:       true,
	}
	repo.On("GetActiveByUserAndProvider", mock.Anything, userID, "openai").Return(stored, nil).Once()

	got, err := finder.FindActive(context.Background(), userID, "openai")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)

	// Second lookup is served from the in-process TTL map.
	got, err = finder.FindActive(context.Background(), userID, "openai")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	repo.AssertNumberOfCalls(t, "GetActiveByUserAndProvider", 1)
}

func TestFinder_FindActive_NoActiveKey(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	redisMock.Regexp().ExpectGet(".*").RedisNil()

	c := cache.NewClientWithRedis(db)
	repo := new(providerkeyMocks.MockRepository)
	finder := appProviderKey.NewFinder(repo, c, discardLogger())

	userID := uuid.New()
	repo.On("GetActiveByUserAndProvider", mock.Anything, userID, "gemini").
		Return(nil, domain.ErrNoActiveProviderKey)

	_, err := finder.FindActive(context.Background(), userID, "gemini")
	require.ErrorIs(t, err, domain.ErrNoActiveProviderKey)
}

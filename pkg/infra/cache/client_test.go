package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelshift-ai/modelshift-gateway/pkg/domain/providerkey"
)

func TestSaveAndGetProviderKey(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewClientWithRedis(db)

	key := &providerkey.ProviderKey{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Provider:     "openai",
		EncryptedKey: "ciphertext",
		Active:       true,
	}
	keyJSON, err := json.Marshal(key)
	require.NoError(t, err)

	cacheKey := "user:" + key.UserID.String() + ":provider:openai:key"
	mock.ExpectSet(cacheKey, string(keyJSON), 5*time.Minute).SetVal("OK")

	require.NoError(t, c.SaveProviderKey(context.Background(), key))

	// Save populated the local cache, so the read never hits redis.
	got, err := c.GetProviderKey(context.Background(), key.UserID.String(), "openai")
	require.NoError(t, err)
	assert.Equal(t, key.ID, got.ID)
	assert.Equal(t, "ciphertext", got.EncryptedKey)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProviderKey_MissFromRedis(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewClientWithRedis(db)

	userID := uuid.New()
	cacheKey := "user:" + userID.String() + ":provider:gemini:key"
	mock.ExpectGet(cacheKey).RedisNil()

	_, err := c.GetProviderKey(context.Background(), userID.String(), "gemini")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProviderKey(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewClientWithRedis(db)

	userID := uuid.New()
	cacheKey := "user:" + userID.String() + ":provider:openai:key"
	mock.ExpectDel(cacheKey).SetVal(1)

	assert.NoError(t, c.DeleteProviderKey(context.Background(), userID.String(), "openai"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTTLMapExpiry(t *testing.T) {
	m := NewTTLMap(20 * time.Millisecond)
	m.Set("k", "v")

	got, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)

	time.Sleep(40 * time.Millisecond)
	_, ok = m.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestTTLMapClear(t *testing.T) {
	m := NewTTLMap(time.Minute)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Clear()
	assert.Equal(t, 0, m.Len())
}

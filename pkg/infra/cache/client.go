package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/modelshift-ai/modelshift-gateway/pkg/domain/providerkey"
)

const (
	ProviderKeyPattern = "user:%s:provider:%s:key"

	ProviderKeyTTLName = "provider_key"
)

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	RedisClient() *redis.Client
	CreateTTLMap(name string, ttl time.Duration) *TTLMap
	GetTTLMap(name string) *TTLMap

	GetProviderKey(ctx context.Context, userID, provider string) (*providerkey.ProviderKey, error)
	SaveProviderKey(ctx context.Context, key *providerkey.ProviderKey) error
	DeleteProviderKey(ctx context.Context, userID, provider string) error
}

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type client struct {
	redisClient *redis.Client
	localCache  sync.Map
	ttlMaps     sync.Map
	ttl         time.Duration
}

func NewClient(config Config, logger *logrus.Logger) (Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.WithFields(logrus.Fields{
			"host":  config.Host,
			"port":  config.Port,
			"error": err.Error(),
		}).Error("failed to connect to redis")
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"host": config.Host,
		"port": config.Port,
	}).Info("redis connected successfully")

	return NewClientWithRedis(redisClient), nil
}

// NewClientWithRedis wraps an existing redis client; tests inject a mock
// through this constructor.
func NewClientWithRedis(redisClient *redis.Client) Client {
	return &client{
		redisClient: redisClient,
		localCache:  sync.Map{},
		ttlMaps:     sync.Map{},
		ttl:         5 * time.Minute,
	}
}

func (c *client) Get(ctx context.Context, key string) (string, error) {
	if value, ok := c.localCache.Load(key); ok {
		if str, ok := value.(string); ok {
			return str, nil
		}
	}
	return c.redisClient.Get(ctx, key).Result()
}

func (c *client) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := c.redisClient.Set(ctx, key, value, expiration).Err(); err != nil {
		return err
	}
	c.localCache.Store(key, value)
	return nil
}

func (c *client) Delete(ctx context.Context, key string) error {
	if err := c.redisClient.Del(ctx, key).Err(); err != nil {
		return err
	}
	c.localCache.Delete(key)
	return nil
}

func (c *client) RedisClient() *redis.Client {
	return c.redisClient
}

func (c *client) CreateTTLMap(name string, ttl time.Duration) *TTLMap {
	ttlMap := NewTTLMap(ttl)
	c.ttlMaps.Store(name, ttlMap)
	return ttlMap
}

func (c *client) GetTTLMap(name string) *TTLMap {
	if value, ok := c.ttlMaps.Load(name); ok {
		if ttlMap, ok := value.(*TTLMap); ok {
			return ttlMap
		}
	}
	return nil
}

// SaveProviderKey caches a provider key record (already encrypted) under
// the user+provider pair with the default TTL.
func (c *client) SaveProviderKey(ctx context.Context, key *providerkey.ProviderKey) error {
	cacheKey := fmt.Sprintf(ProviderKeyPattern, key.UserID, key.Provider)
	keyJSON, err := json.Marshal(key)
	if err != nil {
		return err
	}
	return c.Set(ctx, cacheKey, string(keyJSON), c.ttl)
}

func (c *client) GetProviderKey(ctx context.Context, userID, provider string) (*providerkey.ProviderKey, error) {
	cacheKey := fmt.Sprintf(ProviderKeyPattern, userID, provider)
	res, err := c.Get(ctx, cacheKey)
	if err != nil {
		return nil, err
	}
	entity := new(providerkey.ProviderKey)
	if err := json.Unmarshal([]byte(res), entity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached provider key: %w", err)
	}
	return entity, nil
}

func (c *client) DeleteProviderKey(ctx context.Context, userID, provider string) error {
	return c.Delete(ctx, fmt.Sprintf(ProviderKeyPattern, userID, provider))
}

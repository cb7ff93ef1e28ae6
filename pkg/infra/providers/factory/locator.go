package factory

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/modelshift-ai/modelshift-gateway/pkg/config"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/httpx"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/providers"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/providers/anthropic"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/providers/gemini"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/providers/generic"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/providers/openai"
)

const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderWatsonx   = "watsonx"
)

//go:generate mockery --name=ProviderLocator --dir=. --output=./mocks --filename=provider_locator_mock.go --case=underscore --with-expecter

type ProviderLocator interface {
	Get(provider string) (providers.Client, error)
}

type providerLocator struct {
	cfg        config.ProvidersConfig
	httpClient httpx.Client
	logger     *logrus.Logger

	mu      sync.Mutex
	clients map[string]providers.Client
}

func NewProviderLocator(
	cfg config.ProvidersConfig,
	httpClient httpx.Client,
	logger *logrus.Logger,
) ProviderLocator {
	return &providerLocator{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger,
		clients:    make(map[string]providers.Client),
	}
}

// Get returns the client for a configured provider: the official SDK client
// when the configuration opts in, the configuration-driven generic client
// otherwise. Clients are built once and reused.
func (f *providerLocator) Get(provider string) (providers.Client, error) {
	providerCfg, ok := f.cfg.Get(provider)
	if !ok {
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if client, ok := f.clients[provider]; ok {
		return client, nil
	}

	client, err := f.build(provider, providerCfg)
	if err != nil {
		return nil, err
	}
	f.clients[provider] = client
	return client, nil
}

func (f *providerLocator) build(provider string, providerCfg config.ProviderConfig) (providers.Client, error) {
	if providerCfg.SDK {
		switch provider {
		case ProviderOpenAI:
			return openai.NewOpenaiClient(), nil
		case ProviderGemini:
			return gemini.NewGeminiClient(), nil
		case ProviderAnthropic:
			return anthropic.NewAnthropicClient(), nil
		default:
			f.logger.WithField("provider", provider).
				Warn("no SDK client available, falling back to generic client")
		}
	}
	return generic.NewClient(providerCfg, f.httpClient, f.logger)
}

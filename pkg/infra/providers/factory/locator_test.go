package factory

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelshift-ai/modelshift-gateway/pkg/config"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/httpx/mocks"
)

func testProvidersConfig() config.ProvidersConfig {
	return config.ProvidersConfig{
		Providers: map[string]config.ProviderConfig{
			"openai": {
				Name: "openai",
				SDK:  true,
			},
			"watsonx": {
				Name:       "watsonx",
				BaseURL:    "https://us-south.ml.cloud.ibm.com",
				Endpoint:   "/ml/v1/text/generation",
				PromptPath: "input",
			},
		},
	}
}

func TestGet_UnknownProvider(t *testing.T) {
	locator := NewProviderLocator(testProvidersConfig(), new(mocks.MockHTTPClient), logrus.New())

	_, err := locator.Get("mistral")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported provider")
}

func TestGet_SDKProvider(t *testing.T) {
	locator := NewProviderLocator(testProvidersConfig(), new(mocks.MockHTTPClient), logrus.New())

	client, err := locator.Get("openai")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestGet_GenericProviderAndReuse(t *testing.T) {
	locator := NewProviderLocator(testProvidersConfig(), new(mocks.MockHTTPClient), logrus.New())

	first, err := locator.Get("watsonx")
	require.NoError(t, err)
	second, err := locator.Get("watsonx")
	require.NoError(t, err)
	assert.Same(t, first, second, "clients should be built once and cached")
}

package openai_test

import (
	"context"
	"testing"

	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/providers"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/providers/openai"
	"github.com/stretchr/testify/assert"
)

func TestNewOpenaiClient(t *testing.T) {
	client := openai.NewOpenaiClient()
	assert.NotNil(t, client, "NewOpenaiClient should return a non-nil client")
}

func TestComplete_MissingAPIKey(t *testing.T) {
	client := openai.NewOpenaiClient()

	config := &providers.Config{
		Model: "gpt-4o",
		Credentials: providers.Credentials{
			ApiKey: "",
		},
	}

	resp, err := client.Complete(context.Background(), config, "test prompt")

	assert.Error(t, err, "Complete should return an error when API key is missing")
	assert.Nil(t, resp, "Complete should return nil response when API key is missing")
	assert.Contains(t, err.Error(), "API key is required")
}

func TestComplete_MissingModel(t *testing.T) {
	client := openai.NewOpenaiClient()

	config := &providers.Config{
		Model: "",
		Credentials: providers.Credentials{
			ApiKey: "test-api-key",
		},
	}

	resp, err := client.Complete(context.Background(), config, "test prompt")
	assert.Error(t, err, "Complete should return an error when model is missing")
	assert.Nil(t, resp, "Complete should return nil response when model is missing")
	assert.Contains(t, err.Error(), "model is required")
}

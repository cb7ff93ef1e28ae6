package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/providers"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) Complete(ctx context.Context, config *providers.Config, prompt string) (*providers.CompletionResponse, error) {
	args := m.Called(ctx, config, prompt)
	resp, _ := args.Get(0).(*providers.CompletionResponse)
	return resp, args.Error(1)
}

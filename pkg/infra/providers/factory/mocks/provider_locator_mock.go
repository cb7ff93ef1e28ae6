package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/providers"
)

type MockProviderLocator struct {
	mock.Mock
}

func (m *MockProviderLocator) Get(provider string) (providers.Client, error) {
	args := m.Called(provider)
	client, _ := args.Get(0).(providers.Client)
	return client, args.Error(1)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	providerkeyDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/providerkey"
)

type MockCreator struct {
	mock.Mock
}

func (m *MockCreator) Create(ctx context.Context, userID uuid.UUID, provider, apiKey string) (*providerkeyDomain.ProviderKey, error) {
	args := m.Called(ctx, userID, provider, apiKey)
	key, _ := args.Get(0).(*providerkeyDomain.ProviderKey)
	return key, args.Error(1)
}

type MockActivator struct {
	mock.Mock
}

func (m *MockActivator) Activate(ctx context.Context, userID, keyID uuid.UUID) (*providerkeyDomain.ProviderKey, error) {
	args := m.Called(ctx, userID, keyID)
	key, _ := args.Get(0).(*providerkeyDomain.ProviderKey)
	return key, args.Error(1)
}

type MockDeleter struct {
	mock.Mock
}

func (m *MockDeleter) Delete(ctx context.Context, userID, keyID uuid.UUID) error {
	args := m.Called(ctx, userID, keyID)
	return args.Error(0)
}

type MockLister struct {
	mock.Mock
}

func (m *MockLister) List(ctx context.Context, userID uuid.UUID) ([]providerkeyDomain.ProviderKey, error) {
	args := m.Called(ctx, userID)
	keys, _ := args.Get(0).([]providerkeyDomain.ProviderKey)
	return keys, args.Error(1)
}

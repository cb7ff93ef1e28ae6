package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	providerkeyDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/providerkey"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, key *providerkeyDomain.ProviderKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRepository) Get(ctx context.Context, id uuid.UUID) (*providerkeyDomain.ProviderKey, error) {
	args := m.Called(ctx, id)
	key, _ := args.Get(0).(*providerkeyDomain.ProviderKey)
	return key, args.Error(1)
}

func (m *MockRepository) GetActiveByUserAndProvider(ctx context.Context, userID uuid.UUID, provider string) (*providerkeyDomain.ProviderKey, error) {
	args := m.Called(ctx, userID, provider)
	key, _ := args.Get(0).(*providerkeyDomain.ProviderKey)
	return key, args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]providerkeyDomain.ProviderKey, error) {
	args := m.Called(ctx, userID)
	keys, _ := args.Get(0).([]providerkeyDomain.ProviderKey)
	return keys, args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, key *providerkeyDomain.ProviderKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

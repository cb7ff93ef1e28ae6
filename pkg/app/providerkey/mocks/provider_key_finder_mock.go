package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	providerkeyDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/providerkey"
)

type MockFinder struct {
	mock.Mock
}

func (m *MockFinder) FindActive(ctx context.Context, userID uuid.UUID, provider string) (*providerkeyDomain.ProviderKey, error) {
	args := m.Called(ctx, userID, provider)
	key, _ := args.Get(0).(*providerkeyDomain.ProviderKey)
	return key, args.Error(1)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	executionDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/execution"
)

type MockLister struct {
	mock.Mock
}

func (m *MockLister) List(ctx context.Context, userID uuid.UUID, filter executionDomain.ListFilter) ([]executionDomain.Execution, int64, error) {
	args := m.Called(ctx, userID, filter)
	records, _ := args.Get(0).([]executionDomain.Execution)
	total, _ := args.Get(1).(int64)
	return records, total, args.Error(2)
}

type MockFinder struct {
	mock.Mock
}

func (m *MockFinder) Find(ctx context.Context, userID, id uuid.UUID) (*executionDomain.Execution, error) {
	args := m.Called(ctx, userID, id)
	record, _ := args.Get(0).(*executionDomain.Execution)
	return record, args.Error(1)
}

type MockDeleter struct {
	mock.Mock
}

func (m *MockDeleter) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockDeleter) Clear(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

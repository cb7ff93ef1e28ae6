package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/modelshift-ai/modelshift-gateway/pkg/app/completion"
	executionDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/execution"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Complete(ctx context.Context, req completion.Request) (*executionDomain.Execution, error) {
	args := m.Called(ctx, req)
	record, _ := args.Get(0).(*executionDomain.Execution)
	return record, args.Error(1)
}

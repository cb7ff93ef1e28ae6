package execution

import (
	"context"

	"github.com/google/uuid"

	executionDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/execution"
)

//go:generate mockery --name=Lister --dir=. --output=./mocks --filename=execution_lister_mock.go --case=underscore --with-expecter
type Lister interface {
	List(ctx context.Context, userID uuid.UUID, filter executionDomain.ListFilter) ([]executionDomain.Execution, int64, error)
}

type lister struct {
	repo executionDomain.Repository
}

func NewLister(repository executionDomain.Repository) Lister {
	return &lister{repo: repository}
}

func (s *lister) List(
	ctx context.Context,
	userID uuid.UUID,
	filter executionDomain.ListFilter,
) ([]executionDomain.Execution, int64, error) {
	return s.repo.List(ctx, userID, filter)
}

package execution

import (
	"context"

	"github.com/google/uuid"

	executionDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/execution"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=execution_finder_mock.go --case=underscore --with-expecter
type Finder interface {
	Find(ctx context.Context, userID, id uuid.UUID) (*executionDomain.Execution, error)
}

type finder struct {
	repo executionDomain.Repository
}

func NewFinder(repository executionDomain.Repository) Finder {
	return &finder{repo: repository}
}

func (s *finder) Find(ctx context.Context, userID, id uuid.UUID) (*executionDomain.Execution, error) {
	return s.repo.Get(ctx, userID, id)
}

package execution

import (
	"context"

	"github.com/google/uuid"

	executionDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/execution"
)

//go:generate mockery --name=Deleter --dir=. --output=./mocks --filename=execution_deleter_mock.go --case=underscore --with-expecter
type Deleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type deleter struct {
	repo executionDomain.Repository
}

func NewDeleter(repository executionDomain.Repository) Deleter {
	return &deleter{repo: repository}
}

func (s *deleter) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *deleter) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.repo.DeleteAllByUser(ctx, userID)
}

package providerkey

import (
	"context"

	"github.com/google/uuid"

	providerkeyDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/providerkey"
)

//go:generate mockery --name=Lister --dir=. --output=./mocks --filename=provider_key_lister_mock.go --case=underscore --with-expecter
type Lister interface {
	List(ctx context.Context, userID uuid.UUID) ([]providerkeyDomain.ProviderKey, error)
}

type lister struct {
	repo providerkeyDomain.Repository
}

func NewLister(repository providerkeyDomain.Repository) Lister {
	return &lister{repo: repository}
}

func (s *lister) List(ctx context.Context, userID uuid.UUID) ([]providerkeyDomain.ProviderKey, error) {
	return s.repo.ListByUser(ctx, userID)
}

package execution

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter narrows and pages history reads. Zero values mean "no filter";
// a zero Limit falls back to the repository default.
type ListFilter struct {
	Provider string
	Success  *bool
	Offset   int
	Limit    int
}

type Repository interface {
	Create(ctx context.Context, record *Execution) error
	Get(ctx context.Context, userID, id uuid.UUID) (*Execution, error)
	List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]Execution, int64, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) error
}

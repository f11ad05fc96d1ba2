package queries

import (
	"context"

	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
)

type CategoryQueries interface {
	List(ctx context.Context) ([]*CategoryView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
}

type categoryQueriesImpl struct {
	readStore CategoryReadStore
}

func NewCategoryQueries(readStore CategoryReadStore) CategoryQueries {
	return &categoryQueriesImpl{readStore: readStore}
}

func (q *categoryQueriesImpl) List(ctx context.Context) ([]*CategoryView, error) {
	return q.readStore.List(ctx)
}

func (q *categoryQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CategoryView, error) {
	c, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, shared.MapNotFound(err, shared.ErrCategoryNotFound)
	}
	return c, nil
}

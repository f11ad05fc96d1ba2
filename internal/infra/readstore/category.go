package readstore

import (
	"context"

	"student-travels/internal/infra"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/pgconv"
	"student-travels/internal/usecase/queries"

	"github.com/google/uuid"
)

type CategoryReadQueries interface {
	GetCategoryByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Categories, error)
	ListCategoriesWithOfferCount(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListCategoriesWithOfferCountRow, error)
}

type CategoryReadStore struct {
	queries CategoryReadQueries
	db      sqlc.DBTX
}

func NewCategoryReadStore(queries CategoryReadQueries, db sqlc.DBTX) *CategoryReadStore {
	return &CategoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CategoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	row, err := r.queries.GetCategoryByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFind("category", err)
	}
	return &queries.CategoryView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *CategoryReadStore) List(ctx context.Context) ([]*queries.CategoryView, error) {
	rows, err := r.queries.ListCategoriesWithOfferCount(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	result := make([]*queries.CategoryView, len(rows))
	for i, row := range rows {
		result[i] = &queries.CategoryView{
			ID:                 row.ID,
			Name:               row.Name,
			Description:        row.Description,
			ApprovedOfferCount: row.ApprovedOfferCount,
			CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

package repository

import (
	"context"

	"student-travels/internal/domain/category"
	"student-travels/internal/infra"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/pgconv"
)

type CategoryWriteQueries interface {
	CreateCategory(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCategoryParams) error
}

type CategoryRepository struct {
	queries CategoryWriteQueries
}

func NewCategoryRepository(queries CategoryWriteQueries) *CategoryRepository {
	return &CategoryRepository{queries: queries}
}

func (r *CategoryRepository) Create(ctx context.Context, tx sqlc.DBTX, c *category.Category) error {
	params := sqlc.CreateCategoryParams{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		CreatedAt:   pgconv.TimeToPgtype(c.CreatedAt()),
	}
	if err := r.queries.CreateCategory(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create category", err)
	}
	return nil
}

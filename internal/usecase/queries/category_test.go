//go:build unit

package queries_test

import (
	"context"
	"testing"

	"student-travels/internal/infra"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/usecase/queries"
	"student-travels/internal/usecase/shared"
	queriesmock "student-travels/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCategoryQueries(t *testing.T) {
	beach := &queries.CategoryView{ID: uuid.New(), Name: "Beach", ApprovedOfferCount: 3}

	t.Run("list", func(t *testing.T) {
		store := queriesmock.NewMockCategoryReadStore(gomock.NewController(t))
		store.EXPECT().List(gomock.Any()).Return([]*queries.CategoryView{beach}, nil)

		got, err := queries.NewCategoryQueries(store).List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []*queries.CategoryView{beach}, got)
	})

	t.Run("get by id", func(t *testing.T) {
		store := queriesmock.NewMockCategoryReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(gomock.Any(), beach.ID).Return(beach, nil)

		got, err := queries.NewCategoryQueries(store).GetByID(context.Background(), beach.ID)

		require.NoError(t, err)
		assert.Equal(t, "Beach", got.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		id := uuid.New()
		store := queriesmock.NewMockCategoryReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("find category", pgx.ErrNoRows))

		_, err := queries.NewCategoryQueries(store).GetByID(context.Background(), id)

		assert.ErrorIs(t, err, shared.ErrCategoryNotFound)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/category"
	"student-travels/internal/domain/user"
	"student-travels/internal/infra"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateCategory(t *testing.T) {
	admin := authz.NewActor(uuid.New(), user.RoleAdmin)
	req := commands.CreateCategoryRequest{Name: "Ski Trips", Description: "Snow and slopes"}

	t.Run("admin creates", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		var saved *category.Category
		m.categories.EXPECT().Create(gomock.Any(), nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, c *category.Category) error {
				saved = c
				return nil
			})

		id, err := commands.NewCategoryUseCase(m.uow, clock.NewMockClock(time.Now())).CreateCategory(context.Background(), admin, req)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, saved.ID(), id)
		assert.Equal(t, "Ski Trips", saved.Name())
	})

	t.Run("moderators cannot", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		moderator := authz.NewActor(uuid.New(), user.RoleModerator)

		_, err := commands.NewCategoryUseCase(m.uow, clock.NewMockClock(time.Now())).CreateCategory(context.Background(), moderator, req)

		assert.ErrorIs(t, err, commands.ErrCategoryAdminsOnly)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("blank name", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))

		_, err := commands.NewCategoryUseCase(m.uow, clock.NewMockClock(time.Now())).
			CreateCategory(context.Background(), admin, commands.CreateCategoryRequest{Name: ""})

		assert.ErrorIs(t, err, category.ErrInvalidName)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("name taken", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		m.categories.EXPECT().Create(gomock.Any(), nil, gomock.Any()).
			Return(infra.WrapRepoErr("create category", &pgconn.PgError{Code: "23505", ConstraintName: "categories_name_key"}))

		_, err := commands.NewCategoryUseCase(m.uow, clock.NewMockClock(time.Now())).CreateCategory(context.Background(), admin, req)

		assert.ErrorIs(t, err, commands.ErrCategoryNameTaken)
		assert.ErrorIs(t, err, errs.ErrDuplicate)
	})
}

//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"student-travels/internal/infra"
	"student-travels/internal/infra/repository"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/errs"
	"student-travels/tests/common/builder"
	repositorymock "student-travels/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Review Tests
// =============================================================================

func TestReviewRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		mockError  error
		expectKind infra.RepositoryErrorKind
		expectDup  bool
	}{
		{
			name: "success: review created successfully",
		},
		{
			name:       "error: database error occurs",
			mockError:  errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "error: second review for the same booking",
			mockError:  &pgconn.PgError{Code: "23505", ConstraintName: "reviews_booking_id_key"},
			expectKind: infra.KindDuplicateKey,
			expectDup:  true,
		},
		{
			name:       "error: booking vanished",
			mockError:  &pgconn.PgError{Code: "23503", ConstraintName: "reviews_booking_id_fkey"},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			repo := repository.NewReviewRepository(mockQueries)

			rev, err := builder.NewReviewBuilder().WithRating(4).BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().
				CreateReview(ctx, nil, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReviewParams) error {
					assert.Equal(t, rev.ID(), arg.ID)
					assert.Equal(t, rev.BookingID(), arg.BookingID)
					assert.Equal(t, int32(4), arg.Rating)
					assert.Equal(t, "Excellent trip!", arg.Comment)
					return tc.mockError
				})

			actualError := repo.Create(ctx, nil, rev)

			if tc.expectKind == "" {
				assert.NoError(t, actualError)
				return
			}
			require.Error(t, actualError)
			assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			assert.Equal(t, tc.expectDup, errs.Is(actualError, errs.ErrDuplicateReview))
		})
	}
}

//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"student-travels/internal/infra"
	"student-travels/internal/infra/readstore"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/pgconv"
	"student-travels/internal/usecase/queries"
	"student-travels/tests/common/builder"
	readstoremock "student-travels/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// ByOffer Tests
// =============================================================================

func TestReviewReadStore_ByOffer(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()

	t.Run("success: first page maps rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReviewReadQueries(ctrl)
		rows := []sqlc.ListReviewsByOfferRow{
			builder.NewReviewBuilder().BuildInfra(),
			builder.NewReviewBuilder().WithRating(3).BuildInfra(),
		}
		mockQueries.EXPECT().
			ListReviewsByOffer(ctx, nil, sqlc.ListReviewsByOfferParams{OfferID: offerID, Limit: 21}).
			Return(rows, nil)

		store := readstore.NewReviewReadStore(mockQueries, nil)
		items, err := store.ByOffer(ctx, offerID, nil, 21)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, rows[0].ID, items[0].ID)
		assert.Equal(t, "test_student", items[0].StudentUsername)
		assert.Equal(t, int32(3), items[1].Rating)
		assert.True(t, items[0].CreatedAt.Equal(rows[0].CreatedAt.Time))
	})

	t.Run("success: keyset is bound as after parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReviewReadQueries(ctrl)
		after := &queries.Keyset{At: time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC), ID: uuid.New()}
		mockQueries.EXPECT().
			ListReviewsByOffer(ctx, nil, sqlc.ListReviewsByOfferParams{
				OfferID:        offerID,
				AfterCreatedAt: pgconv.TimeToPgtype(after.At),
				AfterID:        pgconv.UUIDToPgtype(after.ID),
				Limit:          5,
			}).
			Return(nil, nil)

		store := readstore.NewReviewReadStore(mockQueries, nil)
		items, err := store.ByOffer(ctx, offerID, after, 5)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReviewReadQueries(ctrl)
		mockQueries.EXPECT().ListReviewsByOffer(ctx, nil, gomock.Any()).Return(nil, errDBConnectionLost)

		store := readstore.NewReviewReadStore(mockQueries, nil)
		_, err := store.ByOffer(ctx, offerID, nil, 10)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, errDBConnectionLost)
	})
}

// =============================================================================
// Rating Tests
// =============================================================================

func TestReviewReadStore_Rating(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()

	testCases := []struct {
		name       string
		row        sqlc.GetOfferRatingRow
		err        error
		want       *queries.OfferRating
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: rated offer",
			row:  sqlc.GetOfferRatingRow{AverageRating: 4.25, ReviewCount: 8},
			want: &queries.OfferRating{AverageRating: 4.25, ReviewCount: 8},
		},
		{
			name: "success: no reviews yet",
			row:  sqlc.GetOfferRatingRow{},
			want: &queries.OfferRating{},
		},
		{
			name:       "error: database failure",
			err:        errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockReviewReadQueries(ctrl)
			mockQueries.EXPECT().GetOfferRating(ctx, nil, offerID).Return(tc.row, tc.err)

			store := readstore.NewReviewReadStore(mockQueries, nil)
			got, err := store.Rating(ctx, offerID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// =============================================================================
// ExistsForBooking Tests
// =============================================================================

func TestReviewReadStore_ExistsForBooking(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReviewReadQueries(ctrl)
		mockQueries.EXPECT().ReviewExistsForBooking(ctx, nil, bookingID).Return(true, nil)

		exists, err := readstore.NewReviewReadStore(mockQueries, nil).ExistsForBooking(ctx, bookingID)

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("error: no rows is still a failure here", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReviewReadQueries(ctrl)
		mockQueries.EXPECT().ReviewExistsForBooking(ctx, nil, bookingID).Return(false, pgx.ErrNoRows)

		_, err := readstore.NewReviewReadStore(mockQueries, nil).ExistsForBooking(ctx, bookingID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

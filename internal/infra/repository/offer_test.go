//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"student-travels/internal/domain/offer"
	"student-travels/internal/infra"
	"student-travels/internal/infra/repository"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/pgconv"
	"student-travels/internal/pkg/ptr"
	"student-travels/tests/common/builder"
	repositorymock "student-travels/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOfferRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: price derived from original and discount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOfferWriteQueries(ctrl)

		o, err := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
			b.Price = nil
			b.OriginalPrice = ptr.Of(int64(100000))
			b.DiscountPercentage = ptr.Of(int32(20))
		}).BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().CreateOffer(ctx, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOfferParams) error {
				assert.Equal(t, o.ID(), arg.ID)
				assert.Equal(t, int64(80000), arg.PriceCents)
				assert.Equal(t, "pending", arg.Status)
				return nil
			})

		assert.NoError(t, repository.NewOfferRepository(mockQueries).Create(ctx, nil, o))
	})

	t.Run("error: no price at all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOfferWriteQueries(ctrl)

		o, err := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
			b.Price = nil
			b.OriginalPrice = nil
			b.DiscountPercentage = nil
		}).BuildDomain()
		require.NoError(t, err)

		err = repository.NewOfferRepository(mockQueries).Create(ctx, nil, o)

		assert.ErrorIs(t, err, offer.ErrMissingPrice)
	})
}

func TestOfferRepository_Update(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOfferWriteQueries(ctrl)

	o := builder.NewOfferBuilder().AsApproved().BuildReconstructed()
	d := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
		b.Price = ptr.Of(int64(1))
		b.OriginalPrice = ptr.Of(int64(50000))
		b.DiscountPercentage = ptr.Of(int32(10))
	}).Details()
	require.NoError(t, o.Edit(d, time.Now()))

	mockQueries.EXPECT().UpdateOffer(ctx, nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateOfferParams) error {
			assert.Equal(t, int64(45000), arg.PriceCents, "supplied price is overwritten")
			assert.Equal(t, pgconv.Int8PtrToPgtype(ptr.Of(int64(50000))), arg.OriginalPriceCents)
			return nil
		})

	assert.NoError(t, repository.NewOfferRepository(mockQueries).Update(ctx, nil, o))
}

func TestOfferRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOfferWriteQueries(ctrl)
		b := builder.NewOfferBuilder().AsApproved()
		mockQueries.EXPECT().GetOfferForUpdate(ctx, nil, b.ID).Return(b.BuildInfra(), nil)

		o, err := repository.NewOfferRepository(mockQueries).FindForUpdate(ctx, nil, b.ID)

		require.NoError(t, err)
		assert.Equal(t, b.ID, o.ID())
		assert.Equal(t, offer.StatusApproved, o.Status())
		assert.Equal(t, int32(10), o.AvailableSpots())
		assert.True(t, b.StartDate.Equal(o.Dates().Start()))
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOfferWriteQueries(ctrl)
		id := uuid.New()
		mockQueries.EXPECT().GetOfferForUpdate(ctx, nil, id).Return(sqlc.Offers{}, pgx.ErrNoRows)

		_, err := repository.NewOfferRepository(mockQueries).FindForUpdate(ctx, nil, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestOfferRepository_ReserveSpot(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name     string
		affected int64
		mockErr  error
		check    func(t *testing.T, err error)
	}{
		{
			name:     "success: one row decremented",
			affected: 1,
			check:    func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name:     "error: no spots left or not bookable",
			affected: 0,
			check:    func(t *testing.T, err error) { assert.ErrorIs(t, err, offer.ErrNoSpotsLeft) },
		},
		{
			name:    "error: database failure",
			mockErr: errors.New("connection reset"),
			check: func(t *testing.T, err error) {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockOfferWriteQueries(ctrl)
			mockQueries.EXPECT().DecrementOfferSpots(ctx, nil, id).Return(tc.affected, tc.mockErr)

			tc.check(t, repository.NewOfferRepository(mockQueries).ReserveSpot(ctx, nil, id))
		})
	}
}

func TestOfferRepository_ReleaseSpot(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOfferWriteQueries(ctrl)
		mockQueries.EXPECT().IncrementOfferSpots(ctx, nil, id).Return(int64(1), nil)

		assert.NoError(t, repository.NewOfferRepository(mockQueries).ReleaseSpot(ctx, nil, id))
	})

	t.Run("error: offer gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOfferWriteQueries(ctrl)
		mockQueries.EXPECT().IncrementOfferSpots(ctx, nil, id).Return(int64(0), nil)

		err := repository.NewOfferRepository(mockQueries).ReleaseSpot(ctx, nil, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestOfferRepository_ExpireStarted(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOfferWriteQueries(ctrl)
	mockQueries.EXPECT().ExpireStartedOffers(ctx, nil, pgconv.DateToPgtype(today)).Return(int64(3), nil)

	n, err := repository.NewOfferRepository(mockQueries).ExpireStarted(ctx, nil, today)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

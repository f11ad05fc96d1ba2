//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"student-travels/internal/domain/booking"
	"student-travels/internal/infra"
	"student-travels/internal/infra/repository"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/pkg/pgconv"
	"student-travels/tests/common/builder"
	repositorymock "student-travels/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func lockedRow(b *builder.BookingBuilder) sqlc.GetBookingForUpdateRow {
	return sqlc.GetBookingForUpdateRow{
		ID:              b.ID,
		StudentID:       b.StudentID,
		OfferID:         b.OfferID,
		Status:          b.Status.String(),
		PricePaidCents:  b.PricePaid,
		ContactPhone:    b.ContactPhone,
		ContactEmail:    b.ContactEmail,
		SpecialRequests: b.SpecialRequests,
		BookedAt:        pgconv.TimeToPgtype(b.BookedAt),
		UpdatedAt:       pgconv.TimeToPgtype(b.BookedAt),
		AdvertiserID:    b.AdvertiserID,
		OfferTitle:      b.OfferTitle,
	}
}

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		mockError  error
		expectKind infra.RepositoryErrorKind
		expectDup  bool
	}{
		{name: "success"},
		{
			name:       "error: student already booked this offer",
			mockError:  &pgconn.PgError{Code: "23505", ConstraintName: "bookings_student_offer_key"},
			expectKind: infra.KindDuplicateKey,
			expectDup:  true,
		},
		{
			name:       "error: other unique violation is not a duplicate booking",
			mockError:  &pgconn.PgError{Code: "23505", ConstraintName: "bookings_pkey"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: database failure",
			mockError:  errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			b := builder.NewBookingBuilder().BuildDomain()

			mockQueries.EXPECT().CreateBooking(ctx, nil, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) error {
					assert.Equal(t, b.ID(), arg.ID)
					assert.Equal(t, "pending", arg.Status)
					assert.Equal(t, int64(49900), arg.PricePaidCents)
					return tc.mockError
				})

			err := repository.NewBookingRepository(mockQueries).Create(ctx, nil, b)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind))
			assert.Equal(t, tc.expectDup, errs.Is(err, errs.ErrDuplicateBooking))
		})
	}
}

// =============================================================================
// FindForUpdate Tests
// =============================================================================

func TestBookingRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: carries offer owner and title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed)
		mockQueries.EXPECT().GetBookingForUpdate(ctx, nil, b.ID).Return(lockedRow(b), nil)

		locked, err := repository.NewBookingRepository(mockQueries).FindForUpdate(ctx, nil, b.ID)

		require.NoError(t, err)
		assert.Equal(t, b.AdvertiserID, locked.AdvertiserID)
		assert.Equal(t, "Summer in Lisbon", locked.OfferTitle)
		assert.Equal(t, booking.StatusConfirmed, locked.Booking.Status())
		assert.Equal(t, b.StudentID, locked.Booking.StudentID())
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		id := uuid.New()
		mockQueries.EXPECT().GetBookingForUpdate(ctx, nil, id).Return(sqlc.GetBookingForUpdateRow{}, pgx.ErrNoRows)

		_, err := repository.NewBookingRepository(mockQueries).FindForUpdate(ctx, nil, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: unknown stored status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		b := builder.NewBookingBuilder()
		row := lockedRow(b)
		row.Status = "refunded"
		mockQueries.EXPECT().GetBookingForUpdate(ctx, nil, b.ID).Return(row, nil)

		_, err := repository.NewBookingRepository(mockQueries).FindForUpdate(ctx, nil, b.ID)

		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}

// =============================================================================
// UpdateStatus Tests
// =============================================================================

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildDomain()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockQueries.EXPECT().UpdateBookingStatus(ctx, nil, sqlc.UpdateBookingStatusParams{
			ID:        b.ID(),
			Status:    "cancelled",
			UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
		}).Return(nil)

		assert.NoError(t, repository.NewBookingRepository(mockQueries).UpdateStatus(ctx, nil, b))
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockQueries.EXPECT().UpdateBookingStatus(ctx, nil, gomock.Any()).Return(errors.New("connection reset"))

		err := repository.NewBookingRepository(mockQueries).UpdateStatus(ctx, nil, b)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

package repository

import (
	"context"

	"student-travels/internal/domain/booking"
	"student-travels/internal/infra"
	"student-travels/internal/infra/repository/converter"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/pkg/pgconv"
	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
)

const bookingStudentOfferKey = "bookings_student_offer_key"

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingForUpdateRow, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

// Create maps a (student, offer) uniqueness violation to ErrDuplicateBooking so a
// concurrent duplicate that slipped past the pre-check is still reported as one.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to create booking", err)
		if infra.IsConstraint(wrapped, bookingStudentOfferKey) {
			return infra.AsDomainErr(wrapped, errs.ErrDuplicateBooking)
		}
		return wrapped
	}
	return nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.LockedBooking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	b, err := converter.BookingFromLockedRow(row)
	if err != nil {
		return nil, err
	}
	return &shared.LockedBooking{
		Booking:      b,
		AdvertiserID: row.AdvertiserID,
		OfferTitle:   row.OfferTitle,
	}, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params := sqlc.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
	if err := r.queries.UpdateBookingStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return nil
}

package commands

import (
	"context"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/review"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, actor authz.Actor, req CreateReviewRequest) (uuid.UUID, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, actor authz.Actor, req CreateReviewRequest) (uuid.UUID, error) {
	if !authz.CanBook(actor) {
		return uuid.Nil, ErrStudentsOnly
	}
	rev, err := review.NewReview(req.BookingID, req.Rating, req.Comment, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), req.BookingID)
		if err != nil {
			return shared.MapNotFound(err, shared.ErrBookingNotFound)
		}
		if err := locked.Booking.CheckReviewableBy(actor.ID); err != nil {
			return err
		}
		exists, err := tx.Reads().ReviewExistsForBooking(ctx, req.BookingID)
		if err != nil {
			return err
		}
		if exists {
			return errs.ErrDuplicateReview
		}
		return tx.Reviews().Create(ctx, tx.DB(), rev)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return rev.ID(), nil
}

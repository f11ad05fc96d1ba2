package commands

import (
	"context"
	"fmt"
	"log/slog"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/booking"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrStudentsOnly        = errs.NewOfKind(errs.ErrForbidden, "only students can book offers")
	ErrBookingStatusDenied = errs.NewOfKind(errs.ErrForbidden, "not allowed to change this booking status")
)

type CreateBookingRequest struct {
	OfferID         uuid.UUID
	ContactPhone    string
	ContactEmail    string
	SpecialRequests string
}

type CreateBookingResult struct {
	BookingID      uuid.UUID
	Status         booking.Status
	PricePaidCents int64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor authz.Actor, req CreateBookingRequest) (*CreateBookingResult, error)
	UpdateBookingStatus(ctx context.Context, actor authz.Actor, bookingID uuid.UUID, status string) error
	CancelBooking(ctx context.Context, actor authz.Actor, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier shared.Notifier
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, notifier shared.Notifier) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, notifier: notifier}
}

// CreateBooking locks the offer row, so concurrent bookings for the same offer
// serialize and the last spot goes to exactly one of them.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, actor authz.Actor, req CreateBookingRequest) (*CreateBookingResult, error) {
	if !authz.CanBook(actor) {
		return nil, ErrStudentsOnly
	}
	contact, err := booking.NewContactInfo(req.ContactPhone, req.ContactEmail, req.SpecialRequests)
	if err != nil {
		return nil, err
	}

	var (
		created *booking.Booking
		notes   []shared.Notification
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		notes = nil
		now := uc.clock.Now()

		o, err := tx.Offers().FindForUpdate(ctx, tx.DB(), req.OfferID)
		if err != nil {
			return shared.MapNotFound(err, shared.ErrOfferNotFound)
		}

		exists, err := tx.Reads().BookingExists(ctx, actor.ID, o.ID())
		if err != nil {
			return err
		}
		if exists {
			return errs.ErrDuplicateBooking
		}

		if err := o.CheckBookable(now); err != nil {
			return err
		}
		if err := o.ReserveSpot(now); err != nil {
			return err
		}
		if err := tx.Offers().ReserveSpot(ctx, tx.DB(), o.ID()); err != nil {
			return err
		}

		b := booking.NewBooking(actor.ID, o.ID(), o.Pricing().Price(), contact, now)
		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return err
		}

		student, err := tx.Reads().UserByID(ctx, actor.ID)
		if err != nil {
			return shared.MapNotFound(err, shared.ErrUserNotFound)
		}

		title := o.Title().String()
		notes = append(notes,
			shared.Notification{
				RecipientID: actor.ID,
				Topic:       shared.TopicBookingCreated,
				Subject:     "Booking Confirmation",
				Body:        fmt.Sprintf("Your booking for '%s' has been submitted and is pending confirmation.", title),
			},
			shared.Notification{
				RecipientID: o.AdvertiserID(),
				Topic:       shared.TopicBookingReceived,
				Subject:     "New Booking",
				Body:        fmt.Sprintf("You have a new booking for '%s' from %s.", title, student.Username),
			},
		)
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking created", "booking_id", created.ID(), "offer_id", created.OfferID(), "student_id", actor.ID)
	shared.NotifyAll(ctx, uc.notifier, notes)

	return &CreateBookingResult{
		BookingID:      created.ID(),
		Status:         created.Status(),
		PricePaidCents: created.PricePaid(),
	}, nil
}

// UpdateBookingStatus checks existence, then permission, then the transition.
// A status value outside the lifecycle is an invalid transition.
func (uc *bookingUseCaseImpl) UpdateBookingStatus(ctx context.Context, actor authz.Actor, bookingID uuid.UUID, status string) error {
	return uc.changeStatus(ctx, bookingID, func(locked *shared.LockedBooking) (booking.Status, error) {
		if !authz.CanUpdateBookingStatus(actor, locked.AdvertiserID) {
			return "", ErrBookingStatusDenied
		}
		next, err := booking.NewStatus(status)
		if err != nil {
			return "", errs.WithSecondary(booking.ErrInvalidTransition, err)
		}
		return next, nil
	})
}

// CancelBooking is the student's own path to the cancelled state.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, actor authz.Actor, bookingID uuid.UUID) error {
	return uc.changeStatus(ctx, bookingID, func(locked *shared.LockedBooking) (booking.Status, error) {
		if !actor.Is(locked.Booking.StudentID()) {
			return "", booking.ErrNotBookingStudent
		}
		return booking.StatusCancelled, nil
	})
}

func (uc *bookingUseCaseImpl) changeStatus(
	ctx context.Context,
	bookingID uuid.UUID,
	decide func(*shared.LockedBooking) (booking.Status, error),
) error {
	var notes []shared.Notification
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		notes = nil
		locked, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return shared.MapNotFound(err, shared.ErrBookingNotFound)
		}
		next, err := decide(locked)
		if err != nil {
			return err
		}

		b := locked.Booking
		restoresSpot, err := b.TransitionTo(next, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			return err
		}
		if restoresSpot {
			if err := tx.Offers().ReleaseSpot(ctx, tx.DB(), b.OfferID()); err != nil {
				return shared.MapNotFound(err, shared.ErrOfferNotFound)
			}
		}

		notes = append(notes, shared.Notification{
			RecipientID: b.StudentID(),
			Topic:       shared.TopicBookingStatus,
			Subject:     "Booking Status Update",
			Body:        fmt.Sprintf("Your booking for '%s' has been %s.", locked.OfferTitle, next),
		})
		return nil
	})
	if err != nil {
		return err
	}

	shared.NotifyAll(ctx, uc.notifier, notes)
	return nil
}

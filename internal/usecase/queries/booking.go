package queries

import (
	"context"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/booking"
	"student-travels/internal/domain/user"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingAccess          = errs.NewOfKind(errs.ErrForbidden, "booking access denied")
	ErrReceivedBookingsDenied = errs.NewOfKind(errs.ErrForbidden, "only advertisers receive bookings")
	ErrBookingStatsDenied     = errs.NewOfKind(errs.ErrForbidden, "booking statistics are admin only")
)

type BookingQueries interface {
	GetBooking(ctx context.Context, actor authz.Actor, id uuid.UUID) (*BookingView, error)
	MyBookings(ctx context.Context, actor authz.Actor, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	// ReceivedBookings lists bookings on the advertiser's offers, optionally
	// narrowed to one status.
	ReceivedBookings(ctx context.Context, actor authz.Actor, status *string, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	Stats(ctx context.Context, actor authz.Actor) (*BookingStats, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, actor authz.Actor, id uuid.UUID) (*BookingView, error) {
	b, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, shared.MapNotFound(err, shared.ErrBookingNotFound)
	}
	if !authz.CanViewBooking(actor, b.StudentID, b.AdvertiserID) {
		return nil, ErrBookingAccess
	}
	return b, nil
}

func (q *bookingQueriesImpl) MyBookings(ctx context.Context, actor authz.Actor, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if !actor.IsAuthenticated() {
		return nil, nil, errs.ErrUnauthenticated
	}
	after, err := ParseCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.readStore.ByStudent(ctx, actor.ID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	items, next := NextPage(rows, limit, bookingKey)
	return items, next, nil
}

func (q *bookingQueriesImpl) ReceivedBookings(ctx context.Context, actor authz.Actor, status *string, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if !actor.IsAuthenticated() || actor.Role != user.RoleAdvertiser {
		return nil, nil, ErrReceivedBookingsDenied
	}
	if status != nil {
		if _, err := booking.NewStatus(*status); err != nil {
			return nil, nil, err
		}
	}
	after, err := ParseCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.readStore.ByAdvertiser(ctx, actor.ID, status, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	items, next := NextPage(rows, limit, bookingKey)
	return items, next, nil
}

func (q *bookingQueriesImpl) Stats(ctx context.Context, actor authz.Actor) (*BookingStats, error) {
	if !authz.CanViewBookingStats(actor) {
		return nil, ErrBookingStatsDenied
	}
	return q.readStore.Stats(ctx, nil)
}

func bookingKey(b *BookingView) Keyset {
	return Keyset{At: b.BookedAt, ID: b.ID}
}

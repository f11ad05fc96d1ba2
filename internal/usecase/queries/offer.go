package queries

import (
	"context"
	"time"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/offer"
	"student-travels/internal/domain/user"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
)

const MaxFeaturedOffers = 6

var (
	ErrOfferListAdvertisersOnly = errs.NewOfKind(errs.ErrForbidden, "only advertisers have their own offers")
	ErrPendingQueueStaffOnly    = errs.NewOfKind(errs.ErrForbidden, "only moderators can view pending offers")
	ErrInvalidPriceRange        = errs.Validation("minimum price exceeds maximum price")
)

type OfferQueries interface {
	// GetOffer returns approved offers to anyone and other offers only to
	// actors allowed to edit them.
	GetOffer(ctx context.Context, actor authz.Actor, id uuid.UUID) (*OfferDetail, error)
	Search(ctx context.Context, filters OfferSearchFilters, cursor *Cursor, limit int) ([]*OfferListItem, *Cursor, error)
	Featured(ctx context.Context) ([]*OfferListItem, error)
	MyOffers(ctx context.Context, actor authz.Actor, limit int) ([]*OfferListItem, error)
	PendingOffers(ctx context.Context, actor authz.Actor, limit int) ([]*OfferListItem, error)
}

type offerQueriesImpl struct {
	offers     OfferReadStore
	bookings   BookingReadStore
	favourites FavouriteReadStore
	clock      clock.Clock
}

func NewOfferQueries(offers OfferReadStore, bookings BookingReadStore, favourites FavouriteReadStore, clk clock.Clock) OfferQueries {
	return &offerQueriesImpl{
		offers:     offers,
		bookings:   bookings,
		favourites: favourites,
		clock:      clk,
	}
}

func (q *offerQueriesImpl) GetOffer(ctx context.Context, actor authz.Actor, id uuid.UUID) (*OfferDetail, error) {
	detail, err := q.offers.FindDetail(ctx, id)
	if err != nil {
		return nil, shared.MapNotFound(err, shared.ErrOfferNotFound)
	}

	// hidden offers look missing to everyone else
	if detail.Status != offer.StatusApproved.String() && !authz.CanEditOffer(actor, detail.AdvertiserID) {
		return nil, shared.ErrOfferNotFound
	}

	fillAvailability(&detail.OfferListItem, q.clock.Now())

	if actor.IsAuthenticated() && actor.Role == user.RoleStudent {
		fav, err := q.favourites.Exists(ctx, actor.ID, id)
		if err != nil {
			return nil, err
		}
		detail.IsFavourite = fav

		bookingID, err := q.bookings.StudentBookingForOffer(ctx, actor.ID, id)
		if err != nil {
			return nil, err
		}
		detail.MyBookingID = bookingID
	}
	return detail, nil
}

func (q *offerQueriesImpl) Search(ctx context.Context, filters OfferSearchFilters, cursor *Cursor, limit int) ([]*OfferListItem, *Cursor, error) {
	if filters.MinPriceCents != nil && filters.MaxPriceCents != nil && *filters.MinPriceCents > *filters.MaxPriceCents {
		return nil, nil, ErrInvalidPriceRange
	}
	after, err := ParseCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.offers.Search(ctx, filters, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	items, next := NextPage(rows, limit, offerKey)
	q.markAvailable(items)
	return items, next, nil
}

func (q *offerQueriesImpl) Featured(ctx context.Context) ([]*OfferListItem, error) {
	items, err := q.offers.Featured(ctx, MaxFeaturedOffers)
	if err != nil {
		return nil, err
	}
	q.markAvailable(items)
	return items, nil
}

func (q *offerQueriesImpl) MyOffers(ctx context.Context, actor authz.Actor, limit int) ([]*OfferListItem, error) {
	if !authz.CanCreateOffer(actor) {
		return nil, ErrOfferListAdvertisersOnly
	}
	items, err := q.offers.ByAdvertiser(ctx, actor.ID, int32(ValidateLimit(limit)))
	if err != nil {
		return nil, err
	}
	q.markAvailable(items)
	return items, nil
}

func (q *offerQueriesImpl) PendingOffers(ctx context.Context, actor authz.Actor, limit int) ([]*OfferListItem, error) {
	if !authz.CanModerateOffer(actor) {
		return nil, ErrPendingQueueStaffOnly
	}
	items, err := q.offers.ByStatus(ctx, offer.StatusPending.String(), int32(ValidateLimit(limit)))
	if err != nil {
		return nil, err
	}
	q.markAvailable(items)
	return items, nil
}

func (q *offerQueriesImpl) markAvailable(items []*OfferListItem) {
	now := q.clock.Now()
	for _, item := range items {
		fillAvailability(item, now)
	}
}

func fillAvailability(item *OfferListItem, now time.Time) {
	item.IsAvailable = offer.IsAvailable(offer.Status(item.Status), item.AvailableSpots, item.StartDate, now)
}

func offerKey(item *OfferListItem) Keyset {
	return Keyset{At: item.CreatedAt, ID: item.ID}
}

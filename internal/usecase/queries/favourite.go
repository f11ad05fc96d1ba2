package queries

import (
	"context"

	"student-travels/internal/domain/authz"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/errs"
)

var ErrFavouriteListStudentsOnly = errs.NewOfKind(errs.ErrForbidden, "only students have favourites")

type FavouriteQueries interface {
	MyFavourites(ctx context.Context, actor authz.Actor, limit int) ([]*FavouriteItem, error)
}

type favouriteQueriesImpl struct {
	readStore FavouriteReadStore
	clock     clock.Clock
}

func NewFavouriteQueries(readStore FavouriteReadStore, clk clock.Clock) FavouriteQueries {
	return &favouriteQueriesImpl{readStore: readStore, clock: clk}
}

func (q *favouriteQueriesImpl) MyFavourites(ctx context.Context, actor authz.Actor, limit int) ([]*FavouriteItem, error) {
	if !authz.CanBook(actor) {
		return nil, ErrFavouriteListStudentsOnly
	}
	items, err := q.readStore.ByStudent(ctx, actor.ID, int32(ValidateLimit(limit)))
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	for _, item := range items {
		fillAvailability(&item.Offer, now)
	}
	return items, nil
}

package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	ListByOffer(ctx context.Context, offerID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	OfferRating(ctx context.Context, offerID uuid.UUID) (*OfferRating, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByOffer(ctx context.Context, offerID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	after, err := ParseCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.repo.ByOffer(ctx, offerID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	items, next := NextPage(rows, limit, func(r *ReviewListItem) Keyset {
		return Keyset{At: r.CreatedAt, ID: r.ID}
	})
	return items, next, nil
}

func (q *reviewQueriesImpl) OfferRating(ctx context.Context, offerID uuid.UUID) (*OfferRating, error) {
	return q.repo.Rating(ctx, offerID)
}

package readstore

import (
	"context"

	"student-travels/internal/infra"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/pgconv"
	"student-travels/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadQueries interface {
	ListReviewsByOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByOfferParams) ([]sqlc.ListReviewsByOfferRow, error)
	GetOfferRating(ctx context.Context, db sqlc.DBTX, offerID uuid.UUID) (sqlc.GetOfferRatingRow, error)
	ReviewExistsForBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (bool, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) ByOffer(ctx context.Context, offerID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.ReviewListItem, error) {
	params := sqlc.ListReviewsByOfferParams{OfferID: offerID, Limit: limit}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.At)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}
	rows, err := r.queries.ListReviewsByOffer(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by offer", err)
	}
	result := make([]*queries.ReviewListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReviewListItem{
			ID:              row.ID,
			BookingID:       row.BookingID,
			StudentUsername: row.StudentUsername,
			Rating:          row.Rating,
			Comment:         row.Comment,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReviewReadStore) Rating(ctx context.Context, offerID uuid.UUID) (*queries.OfferRating, error) {
	row, err := r.queries.GetOfferRating(ctx, r.db, offerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get offer rating", err)
	}
	return &queries.OfferRating{AverageRating: row.AverageRating, ReviewCount: row.ReviewCount}, nil
}

func (r *ReviewReadStore) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	ok, err := r.queries.ReviewExistsForBooking(ctx, r.db, bookingID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return ok, nil
}

package readstore

import (
	"context"

	"student-travels/internal/infra"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/pgconv"
	"student-travels/internal/usecase/queries"

	"github.com/google/uuid"
)

type FavouriteReadQueries interface {
	ListFavouritesByStudent(ctx context.Context, db sqlc.DBTX, arg sqlc.ListFavouritesByStudentParams) ([]sqlc.ListFavouritesByStudentRow, error)
	FavouriteExists(ctx context.Context, db sqlc.DBTX, arg sqlc.FavouriteExistsParams) (bool, error)
	CountFavouritesByStudent(ctx context.Context, db sqlc.DBTX, studentID uuid.UUID) (int64, error)
}

type FavouriteReadStore struct {
	queries FavouriteReadQueries
	db      sqlc.DBTX
}

func NewFavouriteReadStore(queries FavouriteReadQueries, db sqlc.DBTX) *FavouriteReadStore {
	return &FavouriteReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *FavouriteReadStore) ByStudent(ctx context.Context, studentID uuid.UUID, limit int32) ([]*queries.FavouriteItem, error) {
	rows, err := r.queries.ListFavouritesByStudent(ctx, r.db, sqlc.ListFavouritesByStudentParams{
		StudentID: studentID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favourites", err)
	}
	result := make([]*queries.FavouriteItem, len(rows))
	for i, row := range rows {
		offer := toOfferListItem(sqlc.ListFeaturedOffersRow{
			ID:                 row.ID,
			AdvertiserID:       row.AdvertiserID,
			CategoryID:         row.CategoryID,
			Title:              row.Title,
			Destination:        row.Destination,
			PriceCents:         row.PriceCents,
			OriginalPriceCents: row.OriginalPriceCents,
			DiscountPercentage: row.DiscountPercentage,
			AvailableSpots:     row.AvailableSpots,
			StartDate:          row.StartDate,
			EndDate:            row.EndDate,
			Status:             row.Status,
			Featured:           row.Featured,
			CreatedAt:          row.CreatedAt,
			CategoryName:       row.CategoryName,
			AdvertiserUsername: row.AdvertiserUsername,
		})
		result[i] = &queries.FavouriteItem{
			FavouriteID:  row.FavouriteID,
			FavouritedAt: pgconv.TimeFromPgtype(row.FavouritedAt),
			Offer:        *offer,
		}
	}
	return result, nil
}

func (r *FavouriteReadStore) Exists(ctx context.Context, studentID, offerID uuid.UUID) (bool, error) {
	ok, err := r.queries.FavouriteExists(ctx, r.db, sqlc.FavouriteExistsParams{StudentID: studentID, OfferID: offerID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check favourite", err)
	}
	return ok, nil
}

func (r *FavouriteReadStore) CountByStudent(ctx context.Context, studentID uuid.UUID) (int64, error) {
	n, err := r.queries.CountFavouritesByStudent(ctx, r.db, studentID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count favourites", err)
	}
	return n, nil
}

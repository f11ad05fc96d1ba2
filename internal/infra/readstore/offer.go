package readstore

import (
	"context"

	"student-travels/internal/infra"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/pgconv"
	"student-travels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OfferReadQueries interface {
	GetOfferDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetOfferDetailRow, error)
	SearchApprovedOffers(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchApprovedOffersParams) ([]sqlc.SearchApprovedOffersRow, error)
	ListFeaturedOffers(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListFeaturedOffersRow, error)
	ListOffersByAdvertiser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOffersByAdvertiserParams) ([]sqlc.ListOffersByAdvertiserRow, error)
	ListOffersByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOffersByStatusParams) ([]sqlc.ListOffersByStatusRow, error)
	GetAdvertiserOfferCounts(ctx context.Context, db sqlc.DBTX, advertiserID uuid.UUID) (sqlc.GetAdvertiserOfferCountsRow, error)
	CountOffersByStatus(ctx context.Context, db sqlc.DBTX, status pgtype.Text) (int64, error)
}

type OfferReadStore struct {
	queries OfferReadQueries
	db      sqlc.DBTX
}

func NewOfferReadStore(queries OfferReadQueries, db sqlc.DBTX) *OfferReadStore {
	return &OfferReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OfferReadStore) FindDetail(ctx context.Context, id uuid.UUID) (*queries.OfferDetail, error) {
	row, err := r.queries.GetOfferDetail(ctx, r.db, id)
	if err != nil {
		return nil, wrapFind("offer", err)
	}
	item := toOfferListItem(sqlc.ListFeaturedOffersRow{
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
	return &queries.OfferDetail{
		OfferListItem: *item,
		Description:   row.Description,
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		AverageRating: row.AverageRating,
		ReviewCount:   row.ReviewCount,
	}, nil
}

func (r *OfferReadStore) Search(ctx context.Context, filters queries.OfferSearchFilters, after *queries.Keyset, limit int32) ([]*queries.OfferListItem, error) {
	params := sqlc.SearchApprovedOffersParams{
		Query:         pgconv.OptionalText(filters.Query),
		CategoryID:    pgconv.UUIDPtrToPgtype(filters.CategoryID),
		MinPriceCents: pgconv.Int8PtrToPgtype(filters.MinPriceCents),
		MaxPriceCents: pgconv.Int8PtrToPgtype(filters.MaxPriceCents),
		StartFrom:     pgconv.DatePtrToPgtype(filters.StartFrom),
		EndBy:         pgconv.DatePtrToPgtype(filters.EndBy),
		Limit:         limit,
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.At)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}
	rows, err := r.queries.SearchApprovedOffers(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search offers", err)
	}
	result := make([]*queries.OfferListItem, len(rows))
	for i, row := range rows {
		result[i] = toOfferListItem(sqlc.ListFeaturedOffersRow(row))
	}
	return result, nil
}

func (r *OfferReadStore) Featured(ctx context.Context, limit int32) ([]*queries.OfferListItem, error) {
	rows, err := r.queries.ListFeaturedOffers(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list featured offers", err)
	}
	result := make([]*queries.OfferListItem, len(rows))
	for i, row := range rows {
		result[i] = toOfferListItem(row)
	}
	return result, nil
}

func (r *OfferReadStore) ByAdvertiser(ctx context.Context, advertiserID uuid.UUID, limit int32) ([]*queries.OfferListItem, error) {
	rows, err := r.queries.ListOffersByAdvertiser(ctx, r.db, sqlc.ListOffersByAdvertiserParams{
		AdvertiserID: advertiserID,
		Limit:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list advertiser offers", err)
	}
	result := make([]*queries.OfferListItem, len(rows))
	for i, row := range rows {
		result[i] = toOfferListItem(sqlc.ListFeaturedOffersRow(row))
	}
	return result, nil
}

// ByStatus lists oldest first, which is the moderation queue order.
func (r *OfferReadStore) ByStatus(ctx context.Context, status string, limit int32) ([]*queries.OfferListItem, error) {
	rows, err := r.queries.ListOffersByStatus(ctx, r.db, sqlc.ListOffersByStatusParams{
		Status: status,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers by status", err)
	}
	result := make([]*queries.OfferListItem, len(rows))
	for i, row := range rows {
		result[i] = toOfferListItem(sqlc.ListFeaturedOffersRow(row))
	}
	return result, nil
}

func (r *OfferReadStore) AdvertiserCounts(ctx context.Context, advertiserID uuid.UUID) (*queries.AdvertiserOfferCounts, error) {
	row, err := r.queries.GetAdvertiserOfferCounts(ctx, r.db, advertiserID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count advertiser offers", err)
	}
	return &queries.AdvertiserOfferCounts{
		Total:    row.Total,
		Pending:  row.Pending,
		Approved: row.Approved,
		Rejected: row.Rejected,
	}, nil
}

// CountByStatus counts every offer when status is nil.
func (r *OfferReadStore) CountByStatus(ctx context.Context, status *string) (int64, error) {
	n, err := r.queries.CountOffersByStatus(ctx, r.db, pgconv.StringPtrToPgtype(status))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count offers", err)
	}
	return n, nil
}

func toOfferListItem(row sqlc.ListFeaturedOffersRow) *queries.OfferListItem {
	item := &queries.OfferListItem{
		ID:                 row.ID,
		AdvertiserID:       row.AdvertiserID,
		AdvertiserUsername: row.AdvertiserUsername,
		CategoryID:         row.CategoryID,
		CategoryName:       row.CategoryName,
		Title:              row.Title,
		Destination:        row.Destination,
		PriceCents:         row.PriceCents,
		OriginalPriceCents: pgconv.Int8PtrFromPgtype(row.OriginalPriceCents),
		DiscountPercentage: pgconv.Int4PtrFromPgtype(row.DiscountPercentage),
		AvailableSpots:     row.AvailableSpots,
		StartDate:          pgconv.DateFromPgtype(row.StartDate),
		EndDate:            pgconv.DateFromPgtype(row.EndDate),
		Status:             row.Status,
		Featured:           row.Featured,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
	}
	if item.OriginalPriceCents != nil && item.DiscountPercentage != nil {
		item.DiscountCents = *item.OriginalPriceCents - item.PriceCents
	}
	return item
}

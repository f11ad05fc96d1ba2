package repository

import (
	"context"
	"time"

	"student-travels/internal/domain/offer"
	"student-travels/internal/infra"
	"student-travels/internal/infra/repository/converter"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OfferWriteQueries interface {
	CreateOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOfferParams) error
	UpdateOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOfferParams) error
	GetOfferForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Offers, error)
	DecrementOfferSpots(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	IncrementOfferSpots(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	ExpireStartedOffers(ctx context.Context, db sqlc.DBTX, today pgtype.Date) (int64, error)
}

type OfferRepository struct {
	queries OfferWriteQueries
}

func NewOfferRepository(queries OfferWriteQueries) *OfferRepository {
	return &OfferRepository{queries: queries}
}

// Create and Update derive the stored price themselves; callers that already
// ran PrepareForSave get the same result.
func (r *OfferRepository) Create(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) error {
	if err := o.PrepareForSave(); err != nil {
		return err
	}
	if err := r.queries.CreateOffer(ctx, tx, converter.OfferToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}
	return nil
}

func (r *OfferRepository) Update(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) error {
	if err := o.PrepareForSave(); err != nil {
		return err
	}
	if err := r.queries.UpdateOffer(ctx, tx, converter.OfferToUpdateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to update offer", err)
	}
	return nil
}

func (r *OfferRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*offer.Offer, error) {
	row, err := r.queries.GetOfferForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock offer", err)
	}
	return converter.OfferFromRow(row)
}

func (r *OfferRepository) ReserveSpot(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DecrementOfferSpots(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve offer spot", err)
	}
	if n == 0 {
		return offer.ErrNoSpotsLeft
	}
	return nil
}

func (r *OfferRepository) ReleaseSpot(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.IncrementOfferSpots(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to release offer spot", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OfferRepository) ExpireStarted(ctx context.Context, tx sqlc.DBTX, today time.Time) (int64, error) {
	n, err := r.queries.ExpireStartedOffers(ctx, tx, pgconv.DateToPgtype(today))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire started offers", err)
	}
	return n, nil
}

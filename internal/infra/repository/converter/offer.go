package converter

import (
	"student-travels/internal/domain/offer"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/pkg/pgconv"
)

func OfferFromRow(row sqlc.Offers) (*offer.Offer, error) {
	title, err := offer.NewTitle(row.Title)
	if err != nil {
		return nil, errs.Wrapf(err, "stored offer %s", row.ID)
	}
	destination, err := offer.NewDestination(row.Destination)
	if err != nil {
		return nil, errs.Wrapf(err, "stored offer %s", row.ID)
	}
	price := row.PriceCents
	pricing, err := offer.NewPricing(&price, pgconv.Int8PtrFromPgtype(row.OriginalPriceCents), pgconv.Int4PtrFromPgtype(row.DiscountPercentage))
	if err != nil {
		return nil, errs.Wrapf(err, "stored offer %s", row.ID)
	}
	dates, err := offer.NewDateRange(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
	if err != nil {
		return nil, errs.Wrapf(err, "stored offer %s", row.ID)
	}
	status, err := offer.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "stored offer %s", row.ID)
	}

	return offer.ReconstructOffer(
		row.ID, row.AdvertiserID, row.CategoryID,
		title, row.Description, destination,
		pricing, row.AvailableSpots, dates,
		status, row.Featured,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func OfferToCreateParams(o *offer.Offer) sqlc.CreateOfferParams {
	return sqlc.CreateOfferParams{
		ID:                 o.ID(),
		AdvertiserID:       o.AdvertiserID(),
		CategoryID:         o.CategoryID(),
		Title:              o.Title().String(),
		Description:        o.Description(),
		Destination:        o.Destination().String(),
		PriceCents:         o.Pricing().Price(),
		OriginalPriceCents: pgconv.Int8PtrToPgtype(o.Pricing().OriginalPrice()),
		DiscountPercentage: pgconv.Int4PtrToPgtype(o.Pricing().DiscountPercentage()),
		AvailableSpots:     o.AvailableSpots(),
		StartDate:          pgconv.DateToPgtype(o.Dates().Start()),
		EndDate:            pgconv.DateToPgtype(o.Dates().End()),
		Status:             o.Status().String(),
		Featured:           o.Featured(),
		CreatedAt:          pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func OfferToUpdateParams(o *offer.Offer) sqlc.UpdateOfferParams {
	return sqlc.UpdateOfferParams{
		ID:                 o.ID(),
		CategoryID:         o.CategoryID(),
		Title:              o.Title().String(),
		Description:        o.Description(),
		Destination:        o.Destination().String(),
		PriceCents:         o.Pricing().Price(),
		OriginalPriceCents: pgconv.Int8PtrToPgtype(o.Pricing().OriginalPrice()),
		DiscountPercentage: pgconv.Int4PtrToPgtype(o.Pricing().DiscountPercentage()),
		AvailableSpots:     o.AvailableSpots(),
		StartDate:          pgconv.DateToPgtype(o.Dates().Start()),
		EndDate:            pgconv.DateToPgtype(o.Dates().End()),
		Status:             o.Status().String(),
		Featured:           o.Featured(),
		UpdatedAt:          pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

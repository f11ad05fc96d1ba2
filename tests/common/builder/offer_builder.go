//go:build unit || e2e

package builder

import (
	"time"

	"student-travels/internal/domain/offer"
	reqdto "student-travels/internal/handler/dto/request"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/pgconv"
	"student-travels/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferBuilder struct {
	ID                 uuid.UUID
	AdvertiserID       uuid.UUID
	AdvertiserUsername string
	CategoryID         uuid.UUID
	CategoryName       string
	Title              string
	Description        string
	Destination        string
	Price              *int64
	OriginalPrice      *int64
	DiscountPercentage *int32
	AvailableSpots     int32
	StartDate          time.Time
	EndDate            time.Time
	Status             offer.Status
	Featured           bool
	CreatedAt          time.Time
}

func NewOfferBuilder() *OfferBuilder {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	price := int64(49900)
	return &OfferBuilder{
		ID:                 uuid.New(),
		AdvertiserID:       uuid.New(),
		AdvertiserUsername: "sunny_trips",
		CategoryID:         uuid.New(),
		CategoryName:       "Beach",
		Title:              "Summer in Lisbon",
		Description:        "A week of surfing and sightseeing.",
		Destination:        "Lisbon, Portugal",
		Price:              &price,
		AvailableSpots:     10,
		StartDate:          start,
		EndDate:            start.AddDate(0, 0, 7),
		Status:             offer.StatusPending,
		CreatedAt:          now,
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) AsApproved() *OfferBuilder {
	b.Status = offer.StatusApproved
	return b
}

func (b *OfferBuilder) Details() offer.Details {
	return offer.Details{
		CategoryID:         b.CategoryID,
		Title:              b.Title,
		Description:        b.Description,
		Destination:        b.Destination,
		Price:              b.Price,
		OriginalPrice:      b.OriginalPrice,
		DiscountPercentage: b.DiscountPercentage,
		AvailableSpots:     b.AvailableSpots,
		StartDate:          b.StartDate,
		EndDate:            b.EndDate,
	}
}

func (b *OfferBuilder) BuildDomain() (*offer.Offer, error) {
	return offer.NewOffer(b.AdvertiserID, b.Details(), b.CreatedAt)
}

// BuildReconstructed loads the offer as the repository would. It panics on
// builder values that could never have been stored.
func (b *OfferBuilder) BuildReconstructed() *offer.Offer {
	title := must(offer.NewTitle(b.Title))
	destination := must(offer.NewDestination(b.Destination))
	pricing := must(offer.NewPricing(b.Price, b.OriginalPrice, b.DiscountPercentage))
	dates := must(offer.NewDateRange(b.StartDate, b.EndDate))
	return offer.ReconstructOffer(
		b.ID, b.AdvertiserID, b.CategoryID,
		title, b.Description, destination,
		pricing, b.AvailableSpots, dates,
		b.Status, b.Featured, b.CreatedAt, b.CreatedAt,
	)
}

func (b *OfferBuilder) BuildInfra() sqlc.Offers {
	pricing := must(offer.NewPricing(b.Price, b.OriginalPrice, b.DiscountPercentage))
	ts := pgconv.TimeToPgtype(b.CreatedAt)
	return sqlc.Offers{
		ID:                 b.ID,
		AdvertiserID:       b.AdvertiserID,
		CategoryID:         b.CategoryID,
		Title:              b.Title,
		Description:        b.Description,
		Destination:        b.Destination,
		PriceCents:         pricing.Price(),
		OriginalPriceCents: pgconv.Int8PtrToPgtype(pricing.OriginalPrice()),
		DiscountPercentage: pgconv.Int4PtrToPgtype(pricing.DiscountPercentage()),
		AvailableSpots:     b.AvailableSpots,
		StartDate:          pgconv.DateToPgtype(b.StartDate),
		EndDate:            pgconv.DateToPgtype(b.EndDate),
		Status:             b.Status.String(),
		Featured:           b.Featured,
		CreatedAt:          ts,
		UpdatedAt:          ts,
	}
}

func (b *OfferBuilder) BuildListItem() *queries.OfferListItem {
	pricing := must(offer.NewPricing(b.Price, b.OriginalPrice, b.DiscountPercentage))
	return &queries.OfferListItem{
		ID:                 b.ID,
		AdvertiserID:       b.AdvertiserID,
		AdvertiserUsername: b.AdvertiserUsername,
		CategoryID:         b.CategoryID,
		CategoryName:       b.CategoryName,
		Title:              b.Title,
		Destination:        b.Destination,
		PriceCents:         pricing.Price(),
		OriginalPriceCents: b.OriginalPrice,
		DiscountPercentage: b.DiscountPercentage,
		DiscountCents:      pricing.DiscountAmount(),
		AvailableSpots:     b.AvailableSpots,
		StartDate:          b.StartDate,
		EndDate:            b.EndDate,
		Status:             b.Status.String(),
		Featured:           b.Featured,
		IsAvailable:        offer.IsAvailable(b.Status, b.AvailableSpots, b.StartDate, time.Now()),
		CreatedAt:          b.CreatedAt,
	}
}

func (b *OfferBuilder) BuildDetail() *queries.OfferDetail {
	return &queries.OfferDetail{
		OfferListItem: *b.BuildListItem(),
		Description:   b.Description,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *OfferBuilder) BuildCreateRequestDTO() reqdto.CreateOfferRequest {
	return reqdto.CreateOfferRequest{
		CategoryID:         b.CategoryID,
		Title:              b.Title,
		Description:        b.Description,
		Destination:        b.Destination,
		PriceCents:         b.Price,
		OriginalPriceCents: b.OriginalPrice,
		DiscountPercentage: b.DiscountPercentage,
		AvailableSpots:     b.AvailableSpots,
		StartDate:          reqdto.NewDate(b.StartDate),
		EndDate:            reqdto.NewDate(b.EndDate),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

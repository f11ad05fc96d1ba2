package response

import (
	"time"

	"student-travels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OfferCardResponse struct {
	ID                 uuid.UUID `json:"id"`
	AdvertiserUsername string    `json:"advertiser_username"`
	CategoryID         uuid.UUID `json:"category_id"`
	CategoryName       string    `json:"category_name"`
	Title              string    `json:"title"`
	Destination        string    `json:"destination"`
	PriceCents         int64     `json:"price_cents"`
	OriginalPriceCents *int64    `json:"original_price_cents,omitempty"`
	DiscountPercentage *int32    `json:"discount_percentage,omitempty"`
	DiscountCents      int64     `json:"discount_cents"`
	AvailableSpots     int32     `json:"available_spots"`
	StartDate          string    `json:"start_date"`
	EndDate            string    `json:"end_date"`
	DurationDays       int       `json:"duration_days"`
	Status             string    `json:"status"`
	Featured           bool      `json:"featured"`
	IsAvailable        bool      `json:"is_available"`
	CreatedAt          time.Time `json:"created_at"`
}

type OfferDetailResponse struct {
	OfferCardResponse
	AdvertiserID  uuid.UUID  `json:"advertiser_id"`
	Description   string     `json:"description"`
	UpdatedAt     time.Time  `json:"updated_at"`
	AverageRating float64    `json:"average_rating"`
	ReviewCount   int64      `json:"review_count"`
	IsFavourite   bool       `json:"is_favourite"`
	MyBookingID   *uuid.UUID `json:"my_booking_id,omitempty"`
}

const dateLayout = "2006-01-02"

func FromOfferListItem(v *queries.OfferListItem) (*OfferCardResponse, error) {
	r := &OfferCardResponse{}
	// dates are rendered below; copier skips them since the types differ
	if err := copier.Copy(r, v); err != nil {
		return nil, err
	}
	r.StartDate = v.StartDate.Format(dateLayout)
	r.EndDate = v.EndDate.Format(dateLayout)
	r.DurationDays = int(v.EndDate.Sub(v.StartDate).Hours() / 24)
	return r, nil
}

func FromOfferList(items []*queries.OfferListItem) ([]*OfferCardResponse, error) {
	out := make([]*OfferCardResponse, 0, len(items))
	for _, it := range items {
		card, err := FromOfferListItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, card)
	}
	return out, nil
}

func FromOfferDetail(v *queries.OfferDetail) (*OfferDetailResponse, error) {
	card, err := FromOfferListItem(&v.OfferListItem)
	if err != nil {
		return nil, err
	}
	r := &OfferDetailResponse{OfferCardResponse: *card}
	r.AdvertiserID = v.AdvertiserID
	r.Description = v.Description
	r.UpdatedAt = v.UpdatedAt
	r.AverageRating = v.AverageRating
	r.ReviewCount = v.ReviewCount
	r.IsFavourite = v.IsFavourite
	r.MyBookingID = v.MyBookingID
	return r, nil
}

type CategoryResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	ApprovedOfferCount int64     `json:"approved_offer_count"`
}

func FromCategoryViews(views []*queries.CategoryView) ([]*CategoryResponse, error) {
	return copyList[*queries.CategoryView, *CategoryResponse](views)
}

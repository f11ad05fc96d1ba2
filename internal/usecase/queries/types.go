package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView is what authentication and the profile endpoints need.
type AuthorizedUserView struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CategoryView struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	ApprovedOfferCount int64     `json:"approved_offer_count"`
	CreatedAt          time.Time `json:"created_at"`
}

// OfferListItem is the card shown in searches and dashboards. IsAvailable is
// computed at read time.
type OfferListItem struct {
	ID                 uuid.UUID `json:"id"`
	AdvertiserID       uuid.UUID `json:"advertiser_id"`
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
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	Status             string    `json:"status"`
	Featured           bool      `json:"featured"`
	IsAvailable        bool      `json:"is_available"`
	CreatedAt          time.Time `json:"created_at"`
}

type OfferDetail struct {
	OfferListItem
	Description   string     `json:"description"`
	UpdatedAt     time.Time  `json:"updated_at"`
	AverageRating float64    `json:"average_rating"`
	ReviewCount   int64      `json:"review_count"`
	IsFavourite   bool       `json:"is_favourite"`
	MyBookingID   *uuid.UUID `json:"my_booking_id,omitempty"`
}

type OfferSearchFilters struct {
	Query         string
	CategoryID    *uuid.UUID
	MinPriceCents *int64
	MaxPriceCents *int64
	StartFrom     *time.Time
	EndBy         *time.Time
}

type AdvertiserOfferCounts struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type BookingView struct {
	ID                 uuid.UUID `json:"id"`
	StudentID          uuid.UUID `json:"student_id"`
	StudentUsername    string    `json:"student_username"`
	OfferID            uuid.UUID `json:"offer_id"`
	OfferTitle         string    `json:"offer_title"`
	OfferDestination   string    `json:"offer_destination"`
	OfferStartDate     time.Time `json:"offer_start_date"`
	OfferEndDate       time.Time `json:"offer_end_date"`
	AdvertiserID       uuid.UUID `json:"advertiser_id"`
	AdvertiserUsername string    `json:"advertiser_username"`
	Status             string    `json:"status"`
	PricePaidCents     int64     `json:"price_paid_cents"`
	ContactPhone       string    `json:"contact_phone"`
	ContactEmail       string    `json:"contact_email"`
	SpecialRequests    string    `json:"special_requests"`
	BookedAt           time.Time `json:"booked_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	HasReview          bool      `json:"has_review"`
}

// CanReview mirrors the review gate: completed and not yet reviewed.
func (b *BookingView) CanReview() bool {
	return b.Status == "completed" && !b.HasReview
}

type BookingStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
	Completed int64 `json:"completed"`
}

type ReviewListItem struct {
	ID              uuid.UUID `json:"id"`
	BookingID       uuid.UUID `json:"booking_id"`
	StudentUsername string    `json:"student_username"`
	Rating          int32     `json:"rating"`
	Comment         string    `json:"comment"`
	CreatedAt       time.Time `json:"created_at"`
}

type OfferRating struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

type FavouriteItem struct {
	FavouriteID  uuid.UUID     `json:"favourite_id"`
	FavouritedAt time.Time     `json:"favourited_at"`
	Offer        OfferListItem `json:"offer"`
}

type MessageView struct {
	ID                uuid.UUID  `json:"id"`
	SenderID          uuid.UUID  `json:"sender_id"`
	SenderUsername    string     `json:"sender_username"`
	RecipientID       uuid.UUID  `json:"recipient_id"`
	RecipientUsername string     `json:"recipient_username"`
	OfferID           *uuid.UUID `json:"offer_id,omitempty"`
	OfferTitle        *string    `json:"offer_title,omitempty"`
	Subject           string     `json:"subject"`
	Body              string     `json:"body"`
	Read              bool       `json:"read"`
	CreatedAt         time.Time  `json:"created_at"`
}

type MessageBox string

const (
	BoxAll   MessageBox = "all"
	BoxInbox MessageBox = "inbox"
	BoxSent  MessageBox = "sent"
)

func (b MessageBox) IsValid() bool {
	return b == BoxAll || b == BoxInbox || b == BoxSent
}

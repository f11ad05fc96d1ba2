package offer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Details is the advertiser-editable content of an offer.
type Details struct {
	CategoryID         uuid.UUID
	Title              string
	Description        string
	Destination        string
	Price              *int64
	OriginalPrice      *int64
	DiscountPercentage *int32
	AvailableSpots     int32
	StartDate          time.Time
	EndDate            time.Time
}

type Offer struct {
	id             uuid.UUID
	advertiserID   uuid.UUID
	categoryID     uuid.UUID
	title          Title
	description    string
	destination    Destination
	pricing        Pricing
	availableSpots int32
	dates          DateRange
	status         Status
	featured       bool
	createdAt      time.Time
	updatedAt      time.Time

	// raw inputs kept so PrepareForSave can re-derive pricing
	price              *int64
	originalPrice      *int64
	discountPercentage *int32
}

// NewOffer creates a pending offer. Pricing is derived by PrepareForSave, which
// the repository runs on every write.
func NewOffer(advertiserID uuid.UUID, d Details, now time.Time) (*Offer, error) {
	o := &Offer{
		id:           uuid.New(),
		advertiserID: advertiserID,
		status:       StatusPending,
		createdAt:    now,
		updatedAt:    now,
	}
	if err := o.apply(d); err != nil {
		return nil, err
	}
	return o, nil
}

func ReconstructOffer(
	id, advertiserID, categoryID uuid.UUID,
	title Title, description string, destination Destination,
	pricing Pricing, availableSpots int32, dates DateRange,
	status Status, featured bool, createdAt, updatedAt time.Time,
) *Offer {
	price := pricing.Price()
	return &Offer{
		id:                 id,
		advertiserID:       advertiserID,
		categoryID:         categoryID,
		title:              title,
		description:        description,
		destination:        destination,
		pricing:            pricing,
		availableSpots:     availableSpots,
		dates:              dates,
		status:             status,
		featured:           featured,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		price:              &price,
		originalPrice:      pricing.OriginalPrice(),
		discountPercentage: pricing.DiscountPercentage(),
	}
}

func (o *Offer) apply(d Details) error {
	title, err := NewTitle(d.Title)
	if err != nil {
		return err
	}
	destination, err := NewDestination(d.Destination)
	if err != nil {
		return err
	}
	description := strings.TrimSpace(d.Description)
	if description == "" {
		return ErrEmptyDescription
	}
	if d.CategoryID == uuid.Nil {
		return ErrMissingCategory
	}
	if d.AvailableSpots < 0 {
		return ErrNegativeSpots
	}
	dates, err := NewDateRange(d.StartDate, d.EndDate)
	if err != nil {
		return err
	}

	o.categoryID = d.CategoryID
	o.title = title
	o.description = description
	o.destination = destination
	o.availableSpots = d.AvailableSpots
	o.dates = dates
	o.price = d.Price
	o.originalPrice = d.OriginalPrice
	o.discountPercentage = d.DiscountPercentage
	return nil
}

// Edit replaces the content. Editing a rejected offer sends it back to
// moderation.
func (o *Offer) Edit(d Details, now time.Time) error {
	if err := o.apply(d); err != nil {
		return err
	}
	if o.status == StatusRejected {
		o.status = StatusPending
	}
	o.updatedAt = now
	return nil
}

// PrepareForSave validates and derives stored fields. It is idempotent: when original price and discount are both set the
// price is recomputed from them, overwriting any supplied price.
func (o *Offer) PrepareForSave() error {
	if o.availableSpots < 0 {
		return ErrNegativeSpots
	}
	pricing, err := NewPricing(o.price, o.originalPrice, o.discountPercentage)
	if err != nil {
		return err
	}
	o.pricing = pricing
	price := pricing.Price()
	o.price = &price
	return nil
}

func (o *Offer) ChangeStatus(status Status, now time.Time) error {
	if !status.IsModerationTarget() {
		return ErrInvalidStatus
	}
	o.status = status
	o.updatedAt = now
	return nil
}

func (o *Offer) SetFeatured(featured bool, now time.Time) {
	o.featured = featured
	o.updatedAt = now
}

// IsAvailable is computed on every call and never stored.
func (o *Offer) IsAvailable(now time.Time) bool {
	return IsAvailable(o.status, o.availableSpots, o.dates.Start(), now)
}

// IsAvailable: approved, at least one spot, and starting strictly after today.
func IsAvailable(status Status, availableSpots int32, startDate, now time.Time) bool {
	return status == StatusApproved &&
		availableSpots > 0 &&
		truncateDate(startDate).After(truncateDate(now))
}

func (o *Offer) CheckBookable(now time.Time) error {
	if !o.IsAvailable(now) {
		return ErrOfferNotAvailable
	}
	return nil
}

func (o *Offer) ReserveSpot(now time.Time) error {
	if o.availableSpots <= 0 {
		return ErrNoSpotsLeft
	}
	o.availableSpots--
	o.updatedAt = now
	return nil
}

func (o *Offer) ReleaseSpot(now time.Time) {
	o.availableSpots++
	o.updatedAt = now
}

func (o *Offer) ID() uuid.UUID            { return o.id }
func (o *Offer) AdvertiserID() uuid.UUID  { return o.advertiserID }
func (o *Offer) CategoryID() uuid.UUID    { return o.categoryID }
func (o *Offer) Title() Title             { return o.title }
func (o *Offer) Description() string      { return o.description }
func (o *Offer) Destination() Destination { return o.destination }
func (o *Offer) Pricing() Pricing         { return o.pricing }
func (o *Offer) AvailableSpots() int32    { return o.availableSpots }
func (o *Offer) Dates() DateRange         { return o.dates }
func (o *Offer) Status() Status           { return o.status }
func (o *Offer) Featured() bool           { return o.featured }
func (o *Offer) CreatedAt() time.Time     { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time     { return o.updatedAt }

package offer

import (
	"strings"
	"time"
	"unicode/utf8"

	"student-travels/internal/pkg/errs"
)

const (
	MaxTitleLength       = 200
	MaxDestinationLength = 200
)

var (
	ErrInvalidStatus      = errs.Validation("invalid offer status")
	ErrInvalidTitle       = errs.Validation("title must be 1-200 characters")
	ErrInvalidDestination = errs.Validation("destination must be 1-200 characters")
	ErrEmptyDescription   = errs.Validation("description cannot be empty")
	ErrInvalidDateRange   = errs.Validation("start date must be before end date")
	ErrInvalidDiscount    = errs.Validation("discount percentage must be between 0 and 100")
	ErrNegativePrice      = errs.Validation("price cannot be negative")
	ErrMissingPrice       = errs.Validation("price or original price with discount is required")
	ErrNegativeSpots      = errs.Validation("available spots cannot be negative")
	ErrNoSpotsLeft        = errs.NewOfKind(errs.ErrUnavailable, "no spots left")
	ErrOfferNotAvailable  = errs.NewOfKind(errs.ErrUnavailable, "offer is not available for booking")
	ErrMissingCategory    = errs.Validation("category is required")
)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxTitleLength {
		return Title{}, ErrInvalidTitle
	}
	return Title{value: s}, nil
}

func (t Title) String() string { return t.value }

type Destination struct {
	value string
}

func NewDestination(s string) (Destination, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxDestinationLength {
		return Destination{}, ErrInvalidDestination
	}
	return Destination{value: s}, nil
}

func (d Destination) String() string { return d.value }

// DateRange holds calendar dates at UTC midnight.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start, end = truncateDate(start), truncateDate(end)
	if !start.Before(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Pricing amounts are integer cents.
type Pricing struct {
	price              int64
	originalPrice      *int64
	discountPercentage *int32
}

func NewPricing(price *int64, originalPrice *int64, discountPercentage *int32) (Pricing, error) {
	if discountPercentage != nil && (*discountPercentage < 0 || *discountPercentage > 100) {
		return Pricing{}, ErrInvalidDiscount
	}
	if originalPrice != nil && *originalPrice < 0 {
		return Pricing{}, ErrNegativePrice
	}
	p := Pricing{originalPrice: originalPrice, discountPercentage: discountPercentage}
	switch {
	case p.derivable():
		p.price = DerivePrice(*originalPrice, *discountPercentage)
	case price != nil:
		if *price < 0 {
			return Pricing{}, ErrNegativePrice
		}
		p.price = *price
	default:
		return Pricing{}, ErrMissingPrice
	}
	return p, nil
}

func (p Pricing) derivable() bool {
	return p.originalPrice != nil && p.discountPercentage != nil
}

func (p Pricing) Price() int64               { return p.price }
func (p Pricing) OriginalPrice() *int64      { return p.originalPrice }
func (p Pricing) DiscountPercentage() *int32 { return p.discountPercentage }

// DiscountAmount is zero unless both discount inputs are set.
func (p Pricing) DiscountAmount() int64 {
	if !p.derivable() {
		return 0
	}
	return *p.originalPrice - p.price
}

// DerivePrice computes original*(1-discount/100) in cents, rounding the
// discount half up.
func DerivePrice(originalPrice int64, discountPercentage int32) int64 {
	discount := (originalPrice*int64(discountPercentage) + 50) / 100
	return originalPrice - discount
}

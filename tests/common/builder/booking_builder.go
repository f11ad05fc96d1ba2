//go:build unit || e2e

package builder

import (
	"time"

	"student-travels/internal/domain/booking"
	reqdto "student-travels/internal/handler/dto/request"
	"student-travels/internal/usecase/queries"
	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID                 uuid.UUID
	StudentID          uuid.UUID
	StudentUsername    string
	OfferID            uuid.UUID
	OfferTitle         string
	AdvertiserID       uuid.UUID
	AdvertiserUsername string
	Status             booking.Status
	PricePaid          int64
	ContactPhone       string
	ContactEmail       string
	SpecialRequests    string
	BookedAt           time.Time
	HasReview          bool
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:                 uuid.New(),
		StudentID:          uuid.New(),
		StudentUsername:    "test_student",
		OfferID:            uuid.New(),
		OfferTitle:         "Summer in Lisbon",
		AdvertiserID:       uuid.New(),
		AdvertiserUsername: "sunny_trips",
		Status:             booking.StatusPending,
		PricePaid:          49900,
		ContactPhone:       "+33 6 12 34 56 78",
		ContactEmail:       "student@example.com",
		BookedAt:           time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	contact := must(booking.NewContactInfo(b.ContactPhone, b.ContactEmail, b.SpecialRequests))
	return booking.ReconstructBooking(b.ID, b.StudentID, b.OfferID, b.Status, b.PricePaid, contact, b.BookedAt, b.BookedAt)
}

func (b *BookingBuilder) BuildLocked() *shared.LockedBooking {
	return &shared.LockedBooking{
		Booking:      b.BuildDomain(),
		AdvertiserID: b.AdvertiserID,
		OfferTitle:   b.OfferTitle,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:                 b.ID,
		StudentID:          b.StudentID,
		StudentUsername:    b.StudentUsername,
		OfferID:            b.OfferID,
		OfferTitle:         b.OfferTitle,
		OfferDestination:   "Lisbon, Portugal",
		OfferStartDate:     b.BookedAt.AddDate(0, 1, 0),
		OfferEndDate:       b.BookedAt.AddDate(0, 1, 7),
		AdvertiserID:       b.AdvertiserID,
		AdvertiserUsername: b.AdvertiserUsername,
		Status:             b.Status.String(),
		PricePaidCents:     b.PricePaid,
		ContactPhone:       b.ContactPhone,
		ContactEmail:       b.ContactEmail,
		SpecialRequests:    b.SpecialRequests,
		BookedAt:           b.BookedAt,
		UpdatedAt:          b.BookedAt,
		HasReview:          b.HasReview,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		OfferID:         b.OfferID,
		ContactPhone:    b.ContactPhone,
		ContactEmail:    b.ContactEmail,
		SpecialRequests: b.SpecialRequests,
	}
}

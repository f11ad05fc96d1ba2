package response

import (
	"time"

	"student-travels/internal/usecase/commands"
	"student-travels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                 uuid.UUID `json:"id"`
	StudentID          uuid.UUID `json:"student_id"`
	StudentUsername    string    `json:"student_username"`
	OfferID            uuid.UUID `json:"offer_id"`
	OfferTitle         string    `json:"offer_title"`
	OfferDestination   string    `json:"offer_destination"`
	AdvertiserUsername string    `json:"advertiser_username"`
	Status             string    `json:"status"`
	PricePaidCents     int64     `json:"price_paid_cents"`
	ContactPhone       string    `json:"contact_phone"`
	ContactEmail       string    `json:"contact_email"`
	SpecialRequests    string    `json:"special_requests"`
	BookedAt           time.Time `json:"booked_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	CanReview          bool      `json:"can_review"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	r := &BookingResponse{}
	if err := copier.Copy(r, v); err != nil {
		return nil, err
	}
	r.CanReview = v.CanReview()
	return r, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	out := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		r, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

type CreateBookingResponse struct {
	ID             uuid.UUID `json:"id"`
	Status         string    `json:"status"`
	PricePaidCents int64     `json:"price_paid_cents"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:             r.BookingID,
		Status:         r.Status.String(),
		PricePaidCents: r.PricePaidCents,
	}
}

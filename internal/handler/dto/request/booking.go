package request

import (
	"student-travels/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	OfferID         uuid.UUID `json:"offer_id" binding:"required"`
	ContactPhone    string    `json:"contact_phone" binding:"required,max=20"`
	ContactEmail    string    `json:"contact_email" binding:"required,email"`
	SpecialRequests string    `json:"special_requests"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		OfferID:         r.OfferID,
		ContactPhone:    r.ContactPhone,
		ContactEmail:    r.ContactEmail,
		SpecialRequests: r.SpecialRequests,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReceivedBookingsQuery struct {
	PageQuery
	Status string `form:"status" binding:"omitempty,booking_status"`
}

func (q *ReceivedBookingsQuery) StatusFilter() *string {
	if q.Status == "" {
		return nil
	}
	return &q.Status
}

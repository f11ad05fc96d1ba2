package request

import (
	"time"

	"student-travels/internal/usecase/commands"
	"student-travels/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateOfferRequest struct {
	CategoryID         uuid.UUID `json:"category_id" binding:"required"`
	Title              string    `json:"title" binding:"required,max=200"`
	Description        string    `json:"description" binding:"required"`
	Destination        string    `json:"destination" binding:"required,max=200"`
	PriceCents         *int64    `json:"price_cents,omitempty" binding:"omitempty,min=0"`
	OriginalPriceCents *int64    `json:"original_price_cents,omitempty" binding:"omitempty,min=0"`
	DiscountPercentage *int32    `json:"discount_percentage,omitempty" binding:"omitempty,min=0,max=100"`
	AvailableSpots     int32     `json:"available_spots" binding:"min=0"`
	StartDate          *Date     `json:"start_date" binding:"required" swaggertype:"string" format:"date"`
	EndDate            *Date     `json:"end_date" binding:"required" swaggertype:"string" format:"date"`
}

func (r *CreateOfferRequest) ToCommand() commands.CreateOfferRequest {
	cmd := commands.CreateOfferRequest{
		CategoryID:         r.CategoryID,
		Title:              r.Title,
		Description:        r.Description,
		Destination:        r.Destination,
		PriceCents:         r.PriceCents,
		OriginalPriceCents: r.OriginalPriceCents,
		DiscountPercentage: r.DiscountPercentage,
		AvailableSpots:     r.AvailableSpots,
	}
	if t := r.StartDate.Ptr(); t != nil {
		cmd.StartDate = *t
	}
	if t := r.EndDate.Ptr(); t != nil {
		cmd.EndDate = *t
	}
	return cmd
}

// EditOfferRequest: absent fields keep their current value.
type EditOfferRequest struct {
	CategoryID         *uuid.UUID `json:"category_id,omitempty"`
	Title              *string    `json:"title,omitempty" binding:"omitempty,max=200"`
	Description        *string    `json:"description,omitempty"`
	Destination        *string    `json:"destination,omitempty" binding:"omitempty,max=200"`
	PriceCents         *int64     `json:"price_cents,omitempty" binding:"omitempty,min=0"`
	OriginalPriceCents *int64     `json:"original_price_cents,omitempty" binding:"omitempty,min=0"`
	DiscountPercentage *int32     `json:"discount_percentage,omitempty" binding:"omitempty,min=0,max=100"`
	AvailableSpots     *int32     `json:"available_spots,omitempty" binding:"omitempty,min=0"`
	StartDate          *Date      `json:"start_date,omitempty" swaggertype:"string" format:"date"`
	EndDate            *Date      `json:"end_date,omitempty" swaggertype:"string" format:"date"`
}

func (r *EditOfferRequest) ToCommand() commands.EditOfferRequest {
	return commands.EditOfferRequest{
		CategoryID:         r.CategoryID,
		Title:              r.Title,
		Description:        r.Description,
		Destination:        r.Destination,
		PriceCents:         r.PriceCents,
		OriginalPriceCents: r.OriginalPriceCents,
		DiscountPercentage: r.DiscountPercentage,
		AvailableSpots:     r.AvailableSpots,
		StartDate:          r.StartDate.Ptr(),
		EndDate:            r.EndDate.Ptr(),
	}
}

type UpdateOfferStatusRequest struct {
	Status string `json:"status" binding:"required,offer_status"`
}

type SetFeaturedRequest struct {
	Featured *bool `json:"featured" binding:"required"`
}

type OfferSearchQuery struct {
	PageQuery
	Query         string     `form:"q" binding:"omitempty,max=200"`
	CategoryID    string     `form:"category_id" binding:"omitempty,uuid"`
	MinPriceCents *int64     `form:"min_price_cents" binding:"omitempty,min=0"`
	MaxPriceCents *int64     `form:"max_price_cents" binding:"omitempty,min=0"`
	StartFrom     *time.Time `form:"start_from" time_format:"2006-01-02"`
	EndBy         *time.Time `form:"end_by" time_format:"2006-01-02" binding:"omitempty,date_after=StartFrom"`
}

func (q *OfferSearchQuery) ToFilters() queries.OfferSearchFilters {
	return queries.OfferSearchFilters{
		Query:         q.Query,
		CategoryID:    parseOptionalUUID(q.CategoryID),
		MinPriceCents: q.MinPriceCents,
		MaxPriceCents: q.MaxPriceCents,
		StartFrom:     q.StartFrom,
		EndBy:         q.EndBy,
	}
}

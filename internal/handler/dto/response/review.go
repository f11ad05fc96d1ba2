package response

import (
	"time"

	"student-travels/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID              uuid.UUID `json:"id"`
	StudentUsername string    `json:"student_username"`
	Rating          int32     `json:"rating"`
	Comment         string    `json:"comment"`
	CreatedAt       time.Time `json:"created_at"`
}

type OfferReviewsResponse struct {
	Page[*ReviewResponse]
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

func FromReviewList(items []*queries.ReviewListItem, next *queries.Cursor, rating *queries.OfferRating) (*OfferReviewsResponse, error) {
	reviews, err := copyList[*queries.ReviewListItem, *ReviewResponse](items)
	if err != nil {
		return nil, err
	}
	return &OfferReviewsResponse{
		Page:          NewPage(reviews, next),
		AverageRating: rating.AverageRating,
		ReviewCount:   rating.ReviewCount,
	}, nil
}

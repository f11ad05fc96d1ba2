//go:build unit || e2e

package builder

import (
	"time"

	domreview "student-travels/internal/domain/review"
	reqdto "student-travels/internal/handler/dto/request"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewBuilder struct {
	BookingID       uuid.UUID
	OfferID         uuid.UUID
	StudentUsername string
	Rating          int
	Comment         string
	CreatedAt       time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		BookingID:       uuid.New(),
		OfferID:         uuid.New(),
		StudentUsername: "test_student",
		Rating:          5,
		Comment:         "Excellent trip!",
		CreatedAt:       time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.BookingID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildInfra() sqlc.ListReviewsByOfferRow {
	return sqlc.ListReviewsByOfferRow{
		ID:              uuid.New(),
		BookingID:       r.BookingID,
		StudentUsername: r.StudentUsername,
		Rating:          int32(r.Rating),
		Comment:         r.Comment,
		CreatedAt:       pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:              uuid.New(),
		BookingID:       r.BookingID,
		StudentUsername: r.StudentUsername,
		Rating:          int32(r.Rating),
		Comment:         r.Comment,
		CreatedAt:       r.CreatedAt,
	}
}

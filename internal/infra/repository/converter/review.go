package converter

import (
	"student-travels/internal/domain/review"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:        r.ID(),
		BookingID: r.BookingID(),
		Rating:    int32(r.Rating().Value()), // #nosec G115 -- rating is 1..5
		Comment:   r.Comment().String(),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

package repository

import (
	"context"

	"student-travels/internal/domain/review"
	"student-travels/internal/infra"
	"student-travels/internal/infra/repository/converter"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/errs"
)

const reviewBookingKey = "reviews_booking_id_key"

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) error
}

type ReviewRepository struct {
	queries ReviewWriteQueries
}

func NewReviewRepository(queries ReviewWriteQueries) *ReviewRepository {
	return &ReviewRepository{queries: queries}
}

func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error {
	if err := r.queries.CreateReview(ctx, tx, converter.ReviewToCreateParams(rev)); err != nil {
		wrapped := infra.WrapRepoErr("failed to create review", err)
		if infra.IsConstraint(wrapped, reviewBookingKey) {
			return infra.AsDomainErr(wrapped, errs.ErrDuplicateReview)
		}
		return wrapped
	}
	return nil
}

package repository

import (
	"context"

	"student-travels/internal/domain/favourite"
	"student-travels/internal/infra"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const favouriteStudentOfferKey = "favourites_student_offer_key"

type FavouriteWriteQueries interface {
	CreateFavourite(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFavouriteParams) error
	DeleteFavourite(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteFavouriteParams) (int64, error)
}

type FavouriteRepository struct {
	queries FavouriteWriteQueries
}

func NewFavouriteRepository(queries FavouriteWriteQueries) *FavouriteRepository {
	return &FavouriteRepository{queries: queries}
}

func (r *FavouriteRepository) Create(ctx context.Context, tx sqlc.DBTX, f *favourite.Favourite) error {
	params := sqlc.CreateFavouriteParams{
		ID:        f.ID(),
		StudentID: f.StudentID(),
		OfferID:   f.OfferID(),
		CreatedAt: pgconv.TimeToPgtype(f.CreatedAt()),
	}
	if err := r.queries.CreateFavourite(ctx, tx, params); err != nil {
		wrapped := infra.WrapRepoErr("failed to create favourite", err)
		if infra.IsConstraint(wrapped, favouriteStudentOfferKey) {
			return infra.AsDomainErr(wrapped, errs.ErrDuplicateFavourite)
		}
		return wrapped
	}
	return nil
}

func (r *FavouriteRepository) Delete(ctx context.Context, tx sqlc.DBTX, studentID, offerID uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteFavourite(ctx, tx, sqlc.DeleteFavouriteParams{StudentID: studentID, OfferID: offerID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete favourite", err)
	}
	return n > 0, nil
}

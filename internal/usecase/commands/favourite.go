package commands

import (
	"context"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/favourite"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrFavouritesStudentsOnly = errs.NewOfKind(errs.ErrForbidden, "only students can keep favourites")
	ErrFavouriteNotFound      = errs.NewOfKind(errs.ErrNotFound, "favourite not found")
)

type FavouriteCommands interface {
	// ToggleFavourite reports whether the offer is a favourite afterwards.
	ToggleFavourite(ctx context.Context, actor authz.Actor, offerID uuid.UUID) (bool, error)
	AddFavourite(ctx context.Context, actor authz.Actor, offerID uuid.UUID) error
	RemoveFavourite(ctx context.Context, actor authz.Actor, offerID uuid.UUID) error
}

type favouriteUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFavouriteUseCase(uow shared.UnitOfWork, clk clock.Clock) FavouriteCommands {
	return &favouriteUseCaseImpl{uow: uow, clock: clk}
}

func (uc *favouriteUseCaseImpl) ToggleFavourite(ctx context.Context, actor authz.Actor, offerID uuid.UUID) (bool, error) {
	if !authz.CanBook(actor) {
		return false, ErrFavouritesStudentsOnly
	}
	var favourited bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, err := tx.Favourites().Delete(ctx, tx.DB(), actor.ID, offerID)
		if err != nil {
			return err
		}
		if removed {
			favourited = false
			return nil
		}
		if err := uc.add(ctx, tx, actor.ID, offerID); err != nil {
			return err
		}
		favourited = true
		return nil
	})
	return favourited, err
}

func (uc *favouriteUseCaseImpl) AddFavourite(ctx context.Context, actor authz.Actor, offerID uuid.UUID) error {
	if !authz.CanBook(actor) {
		return ErrFavouritesStudentsOnly
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Reads().FavouriteExists(ctx, actor.ID, offerID)
		if err != nil {
			return err
		}
		if exists {
			return errs.ErrDuplicateFavourite
		}
		return uc.add(ctx, tx, actor.ID, offerID)
	})
}

func (uc *favouriteUseCaseImpl) RemoveFavourite(ctx context.Context, actor authz.Actor, offerID uuid.UUID) error {
	if !authz.CanBook(actor) {
		return ErrFavouritesStudentsOnly
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, err := tx.Favourites().Delete(ctx, tx.DB(), actor.ID, offerID)
		if err != nil {
			return err
		}
		if !removed {
			return ErrFavouriteNotFound
		}
		return nil
	})
}

func (uc *favouriteUseCaseImpl) add(ctx context.Context, tx shared.Tx, studentID, offerID uuid.UUID) error {
	if _, err := tx.Reads().OfferByID(ctx, offerID); err != nil {
		return shared.MapNotFound(err, shared.ErrOfferNotFound)
	}
	return tx.Favourites().Create(ctx, tx.DB(), favourite.NewFavourite(studentID, offerID, uc.clock.Now()))
}

package commands

import (
	"context"
	"time"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/user"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/usecase/shared"
)

// UpdateProfileRequest is a partial update; nil fields are left untouched.
type UpdateProfileRequest struct {
	Phone       *string
	DateOfBirth *time.Time
}

type UserCommands interface {
	UpdateProfile(ctx context.Context, actor authz.Actor, req UpdateProfileRequest) error
}

type userUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserUseCase(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userUseCaseImpl{uow: uow, clock: clk}
}

func (uc *userUseCaseImpl) UpdateProfile(ctx context.Context, actor authz.Actor, req UpdateProfileRequest) error {
	if !actor.IsAuthenticated() {
		return errs.ErrUnauthenticated
	}

	var phone *user.Phone
	if req.Phone != nil {
		p, err := user.NewPhone(*req.Phone)
		if err != nil {
			return err
		}
		phone = &p
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, tx.DB(), actor.ID)
		if err != nil {
			return shared.MapNotFound(err, shared.ErrUserNotFound)
		}
		u.UpdateProfile(phone, req.DateOfBirth, uc.clock.Now())
		return tx.Users().UpdateProfile(ctx, tx.DB(), u)
	})
}

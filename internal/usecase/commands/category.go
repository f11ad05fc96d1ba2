package commands

import (
	"context"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/category"
	"student-travels/internal/infra"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCategoryNameTaken  = errs.NewOfKind(errs.ErrDuplicate, "category name already exists")
	ErrCategoryAdminsOnly = errs.NewOfKind(errs.ErrForbidden, "only admins can manage categories")
)

const categoriesNameKey = "categories_name_key"

type CreateCategoryRequest struct {
	Name        string
	Description string
}

type CategoryCommands interface {
	CreateCategory(ctx context.Context, actor authz.Actor, req CreateCategoryRequest) (uuid.UUID, error)
}

type categoryUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCategoryUseCase(uow shared.UnitOfWork, clk clock.Clock) CategoryCommands {
	return &categoryUseCaseImpl{uow: uow, clock: clk}
}

func (uc *categoryUseCaseImpl) CreateCategory(ctx context.Context, actor authz.Actor, req CreateCategoryRequest) (uuid.UUID, error) {
	if !authz.CanManageCategories(actor) {
		return uuid.Nil, ErrCategoryAdminsOnly
	}
	c, err := category.NewCategory(req.Name, req.Description, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Categories().Create(ctx, tx.DB(), c)
	})
	if err != nil {
		if infra.IsConstraint(err, categoriesNameKey) {
			return uuid.Nil, errs.WithSecondary(ErrCategoryNameTaken, err)
		}
		return uuid.Nil, err
	}
	return c.ID(), nil
}

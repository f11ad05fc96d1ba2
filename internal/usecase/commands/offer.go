package commands

import (
	"context"
	"fmt"
	"time"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/offer"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/pkg/patch"
	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAdvertisersOnly    = errs.NewOfKind(errs.ErrForbidden, "only advertisers can create offers")
	ErrOfferEditForbidden = errs.NewOfKind(errs.ErrForbidden, "not allowed to edit this offer")
	ErrModeratorsOnly     = errs.NewOfKind(errs.ErrForbidden, "only moderators can moderate offers")
)

type CreateOfferRequest struct {
	CategoryID         uuid.UUID
	Title              string
	Description        string
	Destination        string
	PriceCents         *int64
	OriginalPriceCents *int64
	DiscountPercentage *int32
	AvailableSpots     int32
	StartDate          time.Time
	EndDate            time.Time
}

// EditOfferRequest is a partial update over the current offer content.
type EditOfferRequest struct {
	CategoryID         *uuid.UUID
	Title              *string
	Description        *string
	Destination        *string
	PriceCents         *int64
	OriginalPriceCents *int64
	DiscountPercentage *int32
	AvailableSpots     *int32
	StartDate          *time.Time
	EndDate            *time.Time
}

type OfferCommands interface {
	CreateOffer(ctx context.Context, actor authz.Actor, req CreateOfferRequest) (uuid.UUID, error)
	EditOffer(ctx context.Context, actor authz.Actor, offerID uuid.UUID, req EditOfferRequest) error
	UpdateOfferStatus(ctx context.Context, actor authz.Actor, offerID uuid.UUID, status string) error
	SetFeatured(ctx context.Context, actor authz.Actor, offerID uuid.UUID, featured bool) error
}

type offerUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier shared.Notifier
}

func NewOfferUseCase(uow shared.UnitOfWork, clk clock.Clock, notifier shared.Notifier) OfferCommands {
	return &offerUseCaseImpl{uow: uow, clock: clk, notifier: notifier}
}

func (uc *offerUseCaseImpl) CreateOffer(ctx context.Context, actor authz.Actor, req CreateOfferRequest) (uuid.UUID, error) {
	if !authz.CanCreateOffer(actor) {
		return uuid.Nil, ErrAdvertisersOnly
	}

	o, err := offer.NewOffer(actor.ID, offer.Details{
		CategoryID:         req.CategoryID,
		Title:              req.Title,
		Description:        req.Description,
		Destination:        req.Destination,
		Price:              req.PriceCents,
		OriginalPrice:      req.OriginalPriceCents,
		DiscountPercentage: req.DiscountPercentage,
		AvailableSpots:     req.AvailableSpots,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
	}, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	if err := o.PrepareForSave(); err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().CategoryByID(ctx, o.CategoryID()); err != nil {
			return shared.MapNotFound(err, shared.ErrCategoryNotFound)
		}
		return tx.Offers().Create(ctx, tx.DB(), o)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return o.ID(), nil
}

func (uc *offerUseCaseImpl) EditOffer(ctx context.Context, actor authz.Actor, offerID uuid.UUID, req EditOfferRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Offers().FindForUpdate(ctx, tx.DB(), offerID)
		if err != nil {
			return shared.MapNotFound(err, shared.ErrOfferNotFound)
		}
		if !authz.CanEditOffer(actor, o.AdvertiserID()) {
			return ErrOfferEditForbidden
		}

		details := mergeOfferDetails(o, req)
		if details.CategoryID != o.CategoryID() {
			if _, err := tx.Reads().CategoryByID(ctx, details.CategoryID); err != nil {
				return shared.MapNotFound(err, shared.ErrCategoryNotFound)
			}
		}
		if err := o.Edit(details, uc.clock.Now()); err != nil {
			return err
		}
		if err := o.PrepareForSave(); err != nil {
			return err
		}
		return tx.Offers().Update(ctx, tx.DB(), o)
	})
}

func mergeOfferDetails(o *offer.Offer, req EditOfferRequest) offer.Details {
	pricing := o.Pricing()
	price := patch.Coalesce(req.PriceCents, pricing.Price())
	return offer.Details{
		CategoryID:         patch.Coalesce(req.CategoryID, o.CategoryID()),
		Title:              patch.Coalesce(req.Title, o.Title().String()),
		Description:        patch.Coalesce(req.Description, o.Description()),
		Destination:        patch.Coalesce(req.Destination, o.Destination().String()),
		Price:              &price,
		OriginalPrice:      coalescePtr(req.OriginalPriceCents, pricing.OriginalPrice()),
		DiscountPercentage: coalescePtr(req.DiscountPercentage, pricing.DiscountPercentage()),
		AvailableSpots:     patch.Coalesce(req.AvailableSpots, o.AvailableSpots()),
		StartDate:          patch.Coalesce(req.StartDate, o.Dates().Start()),
		EndDate:            patch.Coalesce(req.EndDate, o.Dates().End()),
	}
}

func coalescePtr[T any](v, fallback *T) *T {
	if v != nil {
		return v
	}
	return fallback
}

func (uc *offerUseCaseImpl) UpdateOfferStatus(ctx context.Context, actor authz.Actor, offerID uuid.UUID, status string) error {
	if !authz.CanModerateOffer(actor) {
		return ErrModeratorsOnly
	}
	next, err := offer.NewModerationStatus(status)
	if err != nil {
		return err
	}

	var notes []shared.Notification
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		notes = nil
		o, err := tx.Offers().FindForUpdate(ctx, tx.DB(), offerID)
		if err != nil {
			return shared.MapNotFound(err, shared.ErrOfferNotFound)
		}
		if err := o.ChangeStatus(next, uc.clock.Now()); err != nil {
			return err
		}
		if err := o.PrepareForSave(); err != nil {
			return err
		}
		if err := tx.Offers().Update(ctx, tx.DB(), o); err != nil {
			return err
		}
		if next.Notifies() {
			notes = append(notes, offerModeratedNotification(o))
		}
		return nil
	})
	if err != nil {
		return err
	}

	shared.NotifyAll(ctx, uc.notifier, notes)
	return nil
}

func (uc *offerUseCaseImpl) SetFeatured(ctx context.Context, actor authz.Actor, offerID uuid.UUID, featured bool) error {
	if !authz.CanModerateOffer(actor) {
		return ErrModeratorsOnly
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Offers().FindForUpdate(ctx, tx.DB(), offerID)
		if err != nil {
			return shared.MapNotFound(err, shared.ErrOfferNotFound)
		}
		o.SetFeatured(featured, uc.clock.Now())
		if err := o.PrepareForSave(); err != nil {
			return err
		}
		return tx.Offers().Update(ctx, tx.DB(), o)
	})
}

func offerModeratedNotification(o *offer.Offer) shared.Notification {
	subject := "Offer Approved"
	if o.Status() == offer.StatusRejected {
		subject = "Offer Rejected"
	}
	return shared.Notification{
		RecipientID: o.AdvertiserID(),
		Topic:       shared.TopicOfferModerated,
		Subject:     subject,
		Body:        fmt.Sprintf("Your offer '%s' has been %s.", o.Title().String(), o.Status()),
	}
}

// OfferExpiry marks approved offers whose start date has passed as expired.
// Availability never depends on it; it only keeps stored status tidy.
type OfferExpiry struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOfferExpiry(uow shared.UnitOfWork, clk clock.Clock) *OfferExpiry {
	return &OfferExpiry{uow: uow, clock: clk}
}

func (e *OfferExpiry) ExpireStarted(ctx context.Context) (int64, error) {
	var n int64
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Offers().ExpireStarted(ctx, tx.DB(), clock.Today(e.clock))
		return err
	})
	return n, err
}

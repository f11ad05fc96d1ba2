package commands

import (
	"context"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/message"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRecipientNotFound = errs.NewOfKind(errs.ErrNotFound, "recipient not found")

type SendMessageRequest struct {
	RecipientUsername string
	OfferID           *uuid.UUID
	Subject           string
	Body              string
}

type MessageCommands interface {
	SendMessage(ctx context.Context, actor authz.Actor, req SendMessageRequest) (uuid.UUID, error)
	MarkRead(ctx context.Context, actor authz.Actor, messageID uuid.UUID) error
	// MarkConversationRead marks everything otherUserID sent the actor as read
	// and returns how many messages changed.
	MarkConversationRead(ctx context.Context, actor authz.Actor, otherUserID uuid.UUID, offerID *uuid.UUID) (int64, error)
}

type messageUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMessageUseCase(uow shared.UnitOfWork, clk clock.Clock) MessageCommands {
	return &messageUseCaseImpl{uow: uow, clock: clk}
}

func (uc *messageUseCaseImpl) SendMessage(ctx context.Context, actor authz.Actor, req SendMessageRequest) (uuid.UUID, error) {
	if !actor.IsAuthenticated() {
		return uuid.Nil, errs.ErrUnauthenticated
	}

	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		recipient, err := tx.Reads().UserByUsername(ctx, req.RecipientUsername)
		if err != nil {
			return shared.MapNotFound(err, ErrRecipientNotFound)
		}
		if req.OfferID != nil {
			if _, err := tx.Reads().OfferByID(ctx, *req.OfferID); err != nil {
				return shared.MapNotFound(err, shared.ErrOfferNotFound)
			}
		}
		m, err := message.NewMessage(actor.ID, recipient.ID, req.OfferID, req.Subject, req.Body, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Messages().Create(ctx, tx.DB(), m); err != nil {
			return err
		}
		id = m.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *messageUseCaseImpl) MarkRead(ctx context.Context, actor authz.Actor, messageID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := tx.Reads().MessageByID(ctx, messageID)
		if err != nil {
			return shared.MapNotFound(err, shared.ErrMessageNotFound)
		}
		if err := m.MarkReadBy(actor.ID); err != nil {
			return err
		}
		return tx.Messages().MarkRead(ctx, tx.DB(), m.ID())
	})
}

func (uc *messageUseCaseImpl) MarkConversationRead(ctx context.Context, actor authz.Actor, otherUserID uuid.UUID, offerID *uuid.UUID) (int64, error) {
	if !actor.IsAuthenticated() {
		return 0, errs.ErrUnauthenticated
	}
	var n int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Messages().MarkConversationRead(ctx, tx.DB(), actor.ID, otherUserID, offerID)
		return err
	})
	return n, err
}

package repository

import (
	"context"

	"student-travels/internal/domain/message"
	"student-travels/internal/infra"
	"student-travels/internal/infra/repository/converter"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MessageWriteQueries interface {
	CreateMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMessageParams) error
	MarkMessageRead(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkConversationRead(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkConversationReadParams) (int64, error)
}

type MessageRepository struct {
	queries MessageWriteQueries
}

func NewMessageRepository(queries MessageWriteQueries) *MessageRepository {
	return &MessageRepository{queries: queries}
}

func (r *MessageRepository) Create(ctx context.Context, tx sqlc.DBTX, m *message.Message) error {
	if err := r.queries.CreateMessage(ctx, tx, converter.MessageToCreateParams(m)); err != nil {
		return infra.WrapRepoErr("failed to create message", err)
	}
	return nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkMessageRead(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark message read", err)
	}
	return nil
}

func (r *MessageRepository) MarkConversationRead(ctx context.Context, tx sqlc.DBTX, recipientID, senderID uuid.UUID, offerID *uuid.UUID) (int64, error) {
	n, err := r.queries.MarkConversationRead(ctx, tx, sqlc.MarkConversationReadParams{
		RecipientID: recipientID,
		SenderID:    senderID,
		OfferID:     pgconv.UUIDPtrToPgtype(offerID),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark conversation read", err)
	}
	return n, nil
}

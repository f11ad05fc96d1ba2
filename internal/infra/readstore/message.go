package readstore

import (
	"context"

	"student-travels/internal/infra"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/pgconv"
	"student-travels/internal/usecase/queries"

	"github.com/google/uuid"
)

type MessageReadQueries interface {
	GetMessageByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Messages, error)
	ListMessages(ctx context.Context, db sqlc.DBTX, arg sqlc.ListMessagesParams) ([]sqlc.ListMessagesRow, error)
	ListConversation(ctx context.Context, db sqlc.DBTX, arg sqlc.ListConversationParams) ([]sqlc.ListConversationRow, error)
	CountUnreadMessages(ctx context.Context, db sqlc.DBTX, recipientID uuid.UUID) (int64, error)
}

type MessageReadStore struct {
	queries MessageReadQueries
	db      sqlc.DBTX
}

func NewMessageReadStore(queries MessageReadQueries, db sqlc.DBTX) *MessageReadStore {
	return &MessageReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MessageReadStore) FindRaw(ctx context.Context, id uuid.UUID) (sqlc.Messages, error) {
	row, err := r.queries.GetMessageByID(ctx, r.db, id)
	if err != nil {
		return sqlc.Messages{}, wrapFind("message", err)
	}
	return row, nil
}

// List is newest first.
func (r *MessageReadStore) List(ctx context.Context, userID uuid.UUID, box queries.MessageBox, after *queries.Keyset, limit int32) ([]*queries.MessageView, error) {
	params := sqlc.ListMessagesParams{UserID: userID, Box: string(box), Limit: limit}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.At)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}
	rows, err := r.queries.ListMessages(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list messages", err)
	}
	result := make([]*queries.MessageView, len(rows))
	for i, row := range rows {
		result[i] = toMessageView(sqlc.ListConversationRow(row))
	}
	return result, nil
}

// Conversation is oldest first.
func (r *MessageReadStore) Conversation(ctx context.Context, userID, otherUserID uuid.UUID, offerID *uuid.UUID, limit int32) ([]*queries.MessageView, error) {
	rows, err := r.queries.ListConversation(ctx, r.db, sqlc.ListConversationParams{
		UserID:      userID,
		OtherUserID: otherUserID,
		OfferID:     pgconv.UUIDPtrToPgtype(offerID),
		Limit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conversation", err)
	}
	result := make([]*queries.MessageView, len(rows))
	for i, row := range rows {
		result[i] = toMessageView(row)
	}
	return result, nil
}

func (r *MessageReadStore) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountUnreadMessages(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread messages", err)
	}
	return n, nil
}

func toMessageView(row sqlc.ListConversationRow) *queries.MessageView {
	return &queries.MessageView{
		ID:                row.ID,
		SenderID:          row.SenderID,
		SenderUsername:    row.SenderUsername,
		RecipientID:       row.RecipientID,
		RecipientUsername: row.RecipientUsername,
		OfferID:           pgconv.UUIDPtrFromPgtype(row.OfferID),
		OfferTitle:        pgconv.StringPtrFromPgtype(row.OfferTitle),
		Subject:           row.Subject,
		Body:              row.Body,
		Read:              row.Read,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

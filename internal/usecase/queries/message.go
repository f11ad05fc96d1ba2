package queries

import (
	"context"

	"student-travels/internal/domain/authz"
	"student-travels/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidMessageBox = errs.Validation("box must be one of all, inbox, sent")

type MessageQueries interface {
	List(ctx context.Context, actor authz.Actor, box MessageBox, cursor *Cursor, limit int) ([]*MessageView, *Cursor, error)
	// Conversation returns both directions oldest first.
	Conversation(ctx context.Context, actor authz.Actor, otherUserID uuid.UUID, offerID *uuid.UUID, limit int) ([]*MessageView, error)
	UnreadCount(ctx context.Context, actor authz.Actor) (int64, error)
}

type messageQueriesImpl struct {
	readStore MessageReadStore
}

func NewMessageQueries(readStore MessageReadStore) MessageQueries {
	return &messageQueriesImpl{readStore: readStore}
}

func (q *messageQueriesImpl) List(ctx context.Context, actor authz.Actor, box MessageBox, cursor *Cursor, limit int) ([]*MessageView, *Cursor, error) {
	if !actor.IsAuthenticated() {
		return nil, nil, errs.ErrUnauthenticated
	}
	if box == "" {
		box = BoxAll
	}
	if !box.IsValid() {
		return nil, nil, ErrInvalidMessageBox
	}
	after, err := ParseCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.readStore.List(ctx, actor.ID, box, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	items, next := NextPage(rows, limit, func(m *MessageView) Keyset {
		return Keyset{At: m.CreatedAt, ID: m.ID}
	})
	return items, next, nil
}

func (q *messageQueriesImpl) Conversation(ctx context.Context, actor authz.Actor, otherUserID uuid.UUID, offerID *uuid.UUID, limit int) ([]*MessageView, error) {
	if !actor.IsAuthenticated() {
		return nil, errs.ErrUnauthenticated
	}
	return q.readStore.Conversation(ctx, actor.ID, otherUserID, offerID, int32(ValidateLimit(limit)))
}

func (q *messageQueriesImpl) UnreadCount(ctx context.Context, actor authz.Actor) (int64, error) {
	if !actor.IsAuthenticated() {
		return 0, errs.ErrUnauthenticated
	}
	return q.readStore.UnreadCount(ctx, actor.ID)
}

package request

import (
	"student-travels/internal/usecase/commands"
	"student-travels/internal/usecase/queries"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	RecipientUsername string     `json:"recipient_username" binding:"required"`
	OfferID           *uuid.UUID `json:"offer_id,omitempty"`
	Subject           string     `json:"subject" binding:"required,max=200"`
	Body              string     `json:"body" binding:"required"`
}

func (r *SendMessageRequest) ToCommand() commands.SendMessageRequest {
	return commands.SendMessageRequest{
		RecipientUsername: r.RecipientUsername,
		OfferID:           r.OfferID,
		Subject:           r.Subject,
		Body:              r.Body,
	}
}

type MessageListQuery struct {
	PageQuery
	Box string `form:"box" binding:"omitempty,oneof=all inbox sent"`
}

func (q *MessageListQuery) MessageBox() queries.MessageBox {
	if q.Box == "" {
		return queries.BoxAll
	}
	return queries.MessageBox(q.Box)
}

type ConversationQuery struct {
	OfferID string `form:"offer_id" binding:"omitempty,uuid"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q *ConversationQuery) OfferFilter() *uuid.UUID {
	return parseOptionalUUID(q.OfferID)
}

package converter

import (
	"student-travels/internal/domain/message"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/pgconv"
)

func MessageFromRow(row sqlc.Messages) *message.Message {
	return message.ReconstructMessage(
		row.ID, row.SenderID, row.RecipientID, pgconv.UUIDPtrFromPgtype(row.OfferID),
		row.Subject, row.Body, row.Read, pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func MessageToCreateParams(m *message.Message) sqlc.CreateMessageParams {
	return sqlc.CreateMessageParams{
		ID:          m.ID(),
		SenderID:    m.SenderID(),
		RecipientID: m.RecipientID(),
		OfferID:     pgconv.UUIDPtrToPgtype(m.OfferID()),
		Subject:     m.Subject(),
		Body:        m.Body(),
		Read:        m.Read(),
		CreatedAt:   pgconv.TimeToPgtype(m.CreatedAt()),
	}
}

package message

import (
	"strings"
	"time"
	"unicode/utf8"

	"student-travels/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxSubjectLength = 200

var (
	ErrInvalidSubject = errs.Validation("subject must be 1-200 characters")
	ErrEmptyBody      = errs.Validation("message body cannot be empty")
	ErrSelfMessage    = errs.Validation("cannot send a message to yourself")
	ErrNotRecipient   = errs.NewOfKind(errs.ErrForbidden, "only the recipient can mark a message read")
)

type Message struct {
	id          uuid.UUID
	senderID    uuid.UUID
	recipientID uuid.UUID
	offerID     *uuid.UUID
	subject     string
	body        string
	read        bool
	createdAt   time.Time
}

func NewMessage(senderID, recipientID uuid.UUID, offerID *uuid.UUID, subject, body string, now time.Time) (*Message, error) {
	if senderID == recipientID {
		return nil, ErrSelfMessage
	}
	subject = strings.TrimSpace(subject)
	if subject == "" || utf8.RuneCountInString(subject) > MaxSubjectLength {
		return nil, ErrInvalidSubject
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyBody
	}
	return &Message{
		id:          uuid.New(),
		senderID:    senderID,
		recipientID: recipientID,
		offerID:     offerID,
		subject:     subject,
		body:        body,
		createdAt:   now,
	}, nil
}

// NewSystemMessage skips user input checks apart from truncating the subject.
func NewSystemMessage(senderID, recipientID uuid.UUID, subject, body string, now time.Time) *Message {
	if utf8.RuneCountInString(subject) > MaxSubjectLength {
		subject = string([]rune(subject)[:MaxSubjectLength])
	}
	return &Message{
		id:          uuid.New(),
		senderID:    senderID,
		recipientID: recipientID,
		subject:     subject,
		body:        body,
		createdAt:   now,
	}
}

func ReconstructMessage(id, senderID, recipientID uuid.UUID, offerID *uuid.UUID, subject, body string, read bool, createdAt time.Time) *Message {
	return &Message{
		id:          id,
		senderID:    senderID,
		recipientID: recipientID,
		offerID:     offerID,
		subject:     subject,
		body:        body,
		read:        read,
		createdAt:   createdAt,
	}
}

func (m *Message) MarkReadBy(userID uuid.UUID) error {
	if m.recipientID != userID {
		return ErrNotRecipient
	}
	m.read = true
	return nil
}

func (m *Message) ID() uuid.UUID          { return m.id }
func (m *Message) SenderID() uuid.UUID    { return m.senderID }
func (m *Message) RecipientID() uuid.UUID { return m.recipientID }
func (m *Message) OfferID() *uuid.UUID    { return m.offerID }
func (m *Message) Subject() string        { return m.subject }
func (m *Message) Body() string           { return m.body }
func (m *Message) Read() bool             { return m.read }
func (m *Message) CreatedAt() time.Time   { return m.createdAt }

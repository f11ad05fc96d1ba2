//go:build unit

package message_test

import (
	"strings"
	"testing"
	"time"

	"student-travels/internal/domain/message"
	"student-travels/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	now := time.Now()
	sender, recipient := uuid.New(), uuid.New()

	cases := []struct {
		name      string
		recipient uuid.UUID
		subject   string
		body      string
		errIs     error
	}{
		{name: "valid", recipient: recipient, subject: "Question", body: "Is breakfast included?"},
		{name: "to self", recipient: sender, subject: "x", body: "y", errIs: message.ErrSelfMessage},
		{name: "empty subject", recipient: recipient, subject: " ", body: "y", errIs: message.ErrInvalidSubject},
		{name: "long subject", recipient: recipient, subject: strings.Repeat("s", 201), body: "y", errIs: message.ErrInvalidSubject},
		{name: "empty body", recipient: recipient, subject: "x", body: "\n", errIs: message.ErrEmptyBody},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := message.NewMessage(sender, c.recipient, nil, c.subject, c.body, now)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.False(t, m.Read())
		})
	}
}

func TestMarkReadBy(t *testing.T) {
	sender, recipient := uuid.New(), uuid.New()
	m, err := message.NewMessage(sender, recipient, nil, "Hi", "Hello", time.Now())
	require.NoError(t, err)

	err = m.MarkReadBy(sender)
	require.ErrorIs(t, err, message.ErrNotRecipient)
	assert.True(t, errs.Is(err, errs.ErrForbidden))
	assert.False(t, m.Read())

	require.NoError(t, m.MarkReadBy(recipient))
	assert.True(t, m.Read())
}

func TestNewSystemMessageTruncatesSubject(t *testing.T) {
	m := message.NewSystemMessage(uuid.New(), uuid.New(), strings.Repeat("x", 250), "body", time.Now())
	assert.Len(t, m.Subject(), message.MaxSubjectLength)
}

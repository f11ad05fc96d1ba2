//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/message"
	"student-travels/internal/domain/user"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/usecase/commands"
	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessageCommandsTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	m      *txMocks
	uc     commands.MessageCommands
	sender authz.Actor
}

func (s *MessageCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.uc = commands.NewMessageUseCase(s.m.uow, clock.NewMockClock(time.Now()))
	s.sender = authz.NewActor(uuid.New(), user.RoleStudent)
}

func (s *MessageCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMessageCommandsSuite(t *testing.T) {
	suite.Run(t, new(MessageCommandsTestSuite))
}

func (s *MessageCommandsTestSuite) TestSendMessage() {
	recipient := &shared.UserSnapshot{ID: uuid.New(), Username: "sunny_trips"}

	s.Run("success: about an offer", func() {
		offerID := uuid.New()
		var stored *message.Message

		s.m.reads.EXPECT().UserByUsername(gomock.Any(), "sunny_trips").Return(recipient, nil).Times(1)
		s.m.reads.EXPECT().OfferByID(gomock.Any(), offerID).Return(&shared.OfferSnapshot{ID: offerID}, nil).Times(1)
		s.m.messages.EXPECT().Create(gomock.Any(), nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, m *message.Message) error {
				stored = m
				return nil
			}).Times(1)

		id, err := s.uc.SendMessage(context.Background(), s.sender, commands.SendMessageRequest{
			RecipientUsername: "sunny_trips",
			OfferID:           &offerID,
			Subject:           "Question",
			Body:              "Is breakfast included?",
		})

		s.Require().NoError(err)
		s.Require().NotNil(stored)
		s.Equal(stored.ID(), id)
		s.Equal(recipient.ID, stored.RecipientID())
		s.False(stored.Read())
	})

	s.Run("error: unknown recipient", func() {
		s.m.reads.EXPECT().UserByUsername(gomock.Any(), "ghost").Return(nil, errNoRows).Times(1)

		_, err := s.uc.SendMessage(context.Background(), s.sender, commands.SendMessageRequest{
			RecipientUsername: "ghost",
			Subject:           "Hi",
			Body:              "Hello",
		})

		s.ErrorIs(err, commands.ErrRecipientNotFound)
	})

	s.Run("error: writing to yourself", func() {
		self := &shared.UserSnapshot{ID: s.sender.ID, Username: "me"}
		s.m.reads.EXPECT().UserByUsername(gomock.Any(), "me").Return(self, nil).Times(1)

		_, err := s.uc.SendMessage(context.Background(), s.sender, commands.SendMessageRequest{
			RecipientUsername: "me",
			Subject:           "Note",
			Body:              "Remember passport",
		})

		s.ErrorIs(err, message.ErrSelfMessage)
	})

	s.Run("error: anonymous", func() {
		_, err := s.uc.SendMessage(context.Background(), authz.Anonymous(), commands.SendMessageRequest{})
		s.True(errs.Is(err, errs.ErrUnauthenticated))
	})
}

func (s *MessageCommandsTestSuite) TestMarkRead() {
	s.Run("success: recipient marks read", func() {
		msg := message.ReconstructMessage(uuid.New(), uuid.New(), s.sender.ID, nil, "Hi", "Hello", false, time.Now())
		s.m.reads.EXPECT().MessageByID(gomock.Any(), msg.ID()).Return(msg, nil).Times(1)
		s.m.messages.EXPECT().MarkRead(gomock.Any(), nil, msg.ID()).Return(nil).Times(1)

		s.Require().NoError(s.uc.MarkRead(context.Background(), s.sender, msg.ID()))
	})

	s.Run("error: only the recipient", func() {
		msg := message.ReconstructMessage(uuid.New(), s.sender.ID, uuid.New(), nil, "Hi", "Hello", false, time.Now())
		s.m.reads.EXPECT().MessageByID(gomock.Any(), msg.ID()).Return(msg, nil).Times(1)

		err := s.uc.MarkRead(context.Background(), s.sender, msg.ID())

		s.ErrorIs(err, message.ErrNotRecipient)
	})
}

func (s *MessageCommandsTestSuite) TestMarkConversationRead() {
	other := uuid.New()
	s.m.messages.EXPECT().MarkConversationRead(gomock.Any(), nil, s.sender.ID, other, nil).Return(int64(4), nil).Times(1)

	n, err := s.uc.MarkConversationRead(context.Background(), s.sender, other, nil)

	s.Require().NoError(err)
	s.Equal(int64(4), n)
}

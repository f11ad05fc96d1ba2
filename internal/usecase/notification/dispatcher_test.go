//go:build unit

package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"student-travels/internal/domain/message"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/usecase/notification"
	"student-travels/internal/usecase/shared"
	sharedmock "student-travels/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDispatcherNotify(t *testing.T) {
	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	senderID := uuid.New()
	n := shared.Notification{
		RecipientID: uuid.New(),
		Topic:       shared.TopicBookingStatus,
		Subject:     "Booking Status Update",
		Body:        "Your booking for 'Summer in Lisbon' has been confirmed.",
	}

	setup := func(t *testing.T) (*sharedmock.MockMessageRepository, *sharedmock.MockNotificationRepository, *notification.Dispatcher) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		tx := sharedmock.NewMockTx(ctrl)
		messages := sharedmock.NewMockMessageRepository(ctrl)
		jobs := sharedmock.NewMockNotificationRepository(ctrl)

		uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, tx)
			}).AnyTimes()
		tx.EXPECT().DB().Return(nil).AnyTimes()
		tx.EXPECT().Messages().Return(messages).AnyTimes()
		tx.EXPECT().Notifications().Return(jobs).AnyTimes()

		d := notification.NewDispatcher(uow, notification.NewSenderIdentity(senderID), clock.NewMockClock(now))
		return messages, jobs, d
	}

	t.Run("stores a system message and queues a job for it", func(t *testing.T) {
		messages, jobs, d := setup(t)
		var stored *message.Message
		var queued shared.NotificationJob

		messages.EXPECT().Create(gomock.Any(), nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, m *message.Message) error {
				stored = m
				return nil
			})
		jobs.EXPECT().CreateJob(gomock.Any(), nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, j shared.NotificationJob) error {
				queued = j
				return nil
			})

		d.Notify(context.Background(), n)

		require.NotNil(t, stored)
		assert.Equal(t, senderID, stored.SenderID())
		assert.Equal(t, n.RecipientID, stored.RecipientID())
		assert.Equal(t, n.Subject, stored.Subject())

		require.NotNil(t, queued.MessageID)
		assert.Equal(t, stored.ID(), *queued.MessageID)
		assert.Equal(t, n.Topic, queued.Topic)
		assert.Equal(t, now, queued.RunAt)

		var payload notification.Payload
		require.NoError(t, json.Unmarshal(queued.Payload, &payload))
		assert.Equal(t, stored.ID(), payload.MessageID)
		assert.Equal(t, n.Body, payload.Body)
	})

	t.Run("storage failures are swallowed", func(t *testing.T) {
		messages, _, d := setup(t)
		messages.EXPECT().Create(gomock.Any(), nil, gomock.Any()).Return(errors.New("db down"))

		assert.NotPanics(t, func() { d.Notify(context.Background(), n) })
	})

	t.Run("cancelled request context still delivers", func(t *testing.T) {
		messages, jobs, d := setup(t)
		messages.EXPECT().Create(gomock.Any(), nil, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ any, _ *message.Message) error {
				return ctx.Err()
			})
		jobs.EXPECT().CreateJob(gomock.Any(), nil, gomock.Any()).Return(nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		d.Notify(ctx, n)
	})
}

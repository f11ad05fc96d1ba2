package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"student-travels/internal/domain/message"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
)

const dispatchTimeout = 5 * time.Second

// Payload is the body of a queued notification job and of the broker message
// the relay publishes for it.
type Payload struct {
	Topic       string    `json:"topic"`
	RecipientID uuid.UUID `json:"recipient_id"`
	MessageID   uuid.UUID `json:"message_id"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

// Dispatcher turns a notification into a system message plus an outbox job.
// It runs after the lifecycle transaction has committed and never fails the
// caller.
type Dispatcher struct {
	uow    shared.UnitOfWork
	sender *SenderIdentity
	clock  clock.Clock
}

func NewDispatcher(uow shared.UnitOfWork, sender *SenderIdentity, clk clock.Clock) *Dispatcher {
	return &Dispatcher{uow: uow, sender: sender, clock: clk}
}

var _ shared.Notifier = (*Dispatcher)(nil)

func (d *Dispatcher) Notify(ctx context.Context, n shared.Notification) {
	// the request may already be finishing
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), dispatchTimeout)
	defer cancel()

	if err := d.dispatch(ctx, n); err != nil {
		slog.Warn("notification dropped",
			"recipient_id", n.RecipientID,
			"topic", n.Topic,
			"error", err.Error(),
		)
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, n shared.Notification) error {
	now := d.clock.Now()
	m := message.NewSystemMessage(d.sender.ID(), n.RecipientID, n.Subject, n.Body, now)

	payload, err := json.Marshal(Payload{
		Topic:       n.Topic,
		RecipientID: n.RecipientID,
		MessageID:   m.ID(),
		Subject:     m.Subject(),
		Body:        m.Body(),
		CreatedAt:   now,
	})
	if err != nil {
		return err
	}

	return d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Messages().Create(ctx, tx.DB(), m); err != nil {
			return err
		}
		messageID := m.ID()
		return tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationJob{
			ID:          uuid.New(),
			Topic:       n.Topic,
			RecipientID: n.RecipientID,
			MessageID:   &messageID,
			Payload:     payload,
			RunAt:       now,
		})
	})
}

package shared

import (
	"context"

	"github.com/google/uuid"
)

const (
	TopicBookingCreated  = "booking.created"
	TopicBookingReceived = "booking.received"
	TopicBookingStatus   = "booking.status_changed"
	TopicOfferModerated  = "offer.moderated"
)

type Notification struct {
	RecipientID uuid.UUID
	Topic       string
	Subject     string
	Body        string
}

// Notifier delivers fire-and-forget notifications. Implementations absorb and
// log their own failures.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifyAll sends notifications in order, typically after a commit.
func NotifyAll(ctx context.Context, notifier Notifier, ns []Notification) {
	for _, n := range ns {
		notifier.Notify(ctx, n)
	}
}

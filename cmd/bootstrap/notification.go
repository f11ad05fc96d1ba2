package bootstrap

import (
	"context"
	"time"

	infranotification "student-travels/internal/infra/notification"
	"student-travels/internal/pkg/config"
	"student-travels/internal/usecase/notification"
	"student-travels/internal/usecase/shared"

	"go.uber.org/fx"
)

const senderInitTimeout = 10 * time.Second

var NotificationModule = fx.Module("notification",
	fx.Provide(
		NewSenderIdentity,
		fx.Annotate(
			notification.NewDispatcher,
			fx.As(new(shared.Notifier)),
		),
		NewPublisher,
	),
)

// The system sender account must exist before any notification is written.
func NewSenderIdentity(uow shared.UnitOfWork, cfg config.Config) (*notification.SenderIdentity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), senderInitTimeout)
	defer cancel()
	return notification.InitSenderIdentity(ctx, uow, cfg.Notification.SenderUsername, cfg.Notification.SenderEmail)
}

// NewPublisher returns nil when no broker is configured; jobs then stay queued
// in the database.
func NewPublisher(lc fx.Lifecycle, cfg config.Config) infranotification.Publisher {
	if cfg.Broker.URL == "" {
		return nil
	}
	p := infranotification.NewAMQPPublisher(cfg.Broker.URL, cfg.Broker.Queue)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}

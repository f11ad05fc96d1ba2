package bootstrap

import (
	"context"
	"log/slog"

	infranotification "student-travels/internal/infra/notification"
	"student-travels/internal/infra/scheduler"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/config"
	"student-travels/internal/usecase/commands"
	"student-travels/internal/usecase/shared"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		commands.NewOfferExpiry,
		NewScheduler,
	),
	fx.Invoke(func(*scheduler.Scheduler) {}),
)

func NewScheduler(
	lc fx.Lifecycle,
	cfg config.Config,
	uow shared.UnitOfWork,
	publisher infranotification.Publisher,
	expiry *commands.OfferExpiry,
	clk clock.Clock,
) (*scheduler.Scheduler, error) {
	s := scheduler.New()
	if !cfg.Scheduler.Enabled {
		return s, nil
	}

	if publisher != nil {
		relay := infranotification.NewRelay(uow, publisher, clk, cfg.Scheduler)
		err := s.Register(scheduler.Job{
			Name: "notification-relay",
			Spec: cfg.Scheduler.RelaySpec,
			Run: func(ctx context.Context) error {
				n, err := relay.RunOnce(ctx)
				if n > 0 {
					slog.Debug("notification jobs relayed", "count", n)
				}
				return err
			},
		})
		if err != nil {
			return nil, err
		}
	} else {
		slog.Info("no broker configured, notification jobs stay queued")
	}

	if cfg.Scheduler.ExpirySweep {
		err := s.Register(scheduler.Job{
			Name: "offer-expiry",
			Spec: cfg.Scheduler.ExpirySpec,
			Run: func(ctx context.Context) error {
				n, err := expiry.ExpireStarted(ctx)
				if n > 0 {
					slog.Info("offers expired", "count", n)
				}
				return err
			},
		})
		if err != nil {
			return nil, err
		}
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.Stop(ctx)
			return nil
		},
	})
	return s, nil
}

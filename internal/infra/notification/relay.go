package notification

import (
	"context"
	"log/slog"
	"time"

	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/config"
	"student-travels/internal/usecase/shared"
)

const maxRetryDelay = time.Hour

type Publisher interface {
	Publish(ctx context.Context, job shared.NotificationJob) error
}

// Relay moves queued notification jobs from the outbox table to the broker.
// Jobs are claimed with SKIP LOCKED so several relays can run side by side.
type Relay struct {
	uow         shared.UnitOfWork
	publisher   Publisher
	clock       clock.Clock
	batchSize   int32
	maxAttempts int32
	retryDelay  time.Duration
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.SchedulerConfig) *Relay {
	return &Relay{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		batchSize:   cfg.RelayBatchSize,
		maxAttempts: cfg.RelayMaxAttempts,
		retryDelay:  cfg.RelayRetryDelay,
	}
}

// RunOnce relays one batch and reports how many jobs were published.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	var sent int
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := r.clock.Now()
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.batchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if pubErr := r.publisher.Publish(ctx, job); pubErr != nil {
				attempts := job.Attempts + 1
				dead := attempts >= r.maxAttempts
				slog.Warn("notification relay publish failed",
					"job_id", job.ID,
					"topic", job.Topic,
					"attempts", attempts,
					"dead", dead,
					"error", pubErr.Error(),
				)
				retryAt := now.Add(r.backoff(attempts))
				if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, pubErr.Error(), retryAt, dead); err != nil {
					return err
				}
				continue
			}
			if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if sent > 0 {
		slog.Debug("notification jobs relayed", "count", sent)
	}
	return sent, nil
}

// backoff doubles the base delay per attempt, capped at an hour.
func (r *Relay) backoff(attempts int32) time.Duration {
	d := r.retryDelay
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return d
}

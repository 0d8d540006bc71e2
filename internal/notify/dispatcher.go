// Package notify drains the notification outbox. Business transitions only
// append outbox rows; delivery happens here, outside any transaction, so a
// failed send can never roll back an approval or an assignment.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kirinyoku/crew-go/internal/domain"
)

// Notifier delivers one notification message. Implementations are
// fire-and-forget transports (the Redis notifications channel in production).
type Notifier interface {
	Send(ctx context.Context, m domain.OutboxMessage) error
}

// Outbox is the slice of the store the dispatcher needs.
type Outbox interface {
	FetchPending(ctx context.Context, limit int) ([]domain.OutboxMessage, error)
	MarkDispatched(ctx context.Context, ids []uuid.UUID) error
}

type Dispatcher struct {
	outbox   Outbox
	notifier Notifier
	logger   *slog.Logger
	interval time.Duration
	batch    int
}

func NewDispatcher(outbox Outbox, notifier Notifier, logger *slog.Logger, interval time.Duration) *Dispatcher {
	if interval <= 0 {
		interval = 2 * time.Second
	}

	return &Dispatcher{
		outbox:   outbox,
		notifier: notifier,
		logger:   logger,
		interval: interval,
		batch:    100,
	}
}

// Run polls the outbox until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := d.DispatchOnce(ctx); err != nil {
				d.logger.Error("outbox dispatch failed", "error", err)
			}
		}
	}
}

// DispatchOnce delivers one batch of pending messages and returns how many
// were sent. A message whose send fails stays pending and is retried on the
// next tick; it never blocks the rest of the batch.
func (d *Dispatcher) DispatchOnce(ctx context.Context) (int, error) {
	msgs, err := d.outbox.FetchPending(ctx, d.batch)
	if err != nil {
		return 0, err
	}
	if len(msgs) == 0 {
		return 0, nil
	}

	var sent []uuid.UUID
	for _, m := range msgs {
		if err := d.notifier.Send(ctx, m); err != nil {
			d.logger.Warn("notification send failed",
				"kind", m.Kind,
				"recipient", m.Recipient,
				"error", err,
			)
			continue
		}
		sent = append(sent, m.ID)
	}

	if err := d.outbox.MarkDispatched(ctx, sent); err != nil {
		return len(sent), err
	}

	return len(sent), nil
}

package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/kirinyoku/crew-go/internal/domain"
	"github.com/stretchr/testify/assert"
)

type mockOutbox struct {
	FetchPendingFunc   func(ctx context.Context, limit int) ([]domain.OutboxMessage, error)
	MarkDispatchedFunc func(ctx context.Context, ids []uuid.UUID) error

	marked []uuid.UUID
}

func (m *mockOutbox) FetchPending(ctx context.Context, limit int) ([]domain.OutboxMessage, error) {
	if m.FetchPendingFunc != nil {
		return m.FetchPendingFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockOutbox) MarkDispatched(ctx context.Context, ids []uuid.UUID) error {
	m.marked = append(m.marked, ids...)
	if m.MarkDispatchedFunc != nil {
		return m.MarkDispatchedFunc(ctx, ids)
	}
	return nil
}

type mockNotifier struct {
	SendFunc func(ctx context.Context, m domain.OutboxMessage) error

	sent []domain.OutboxMessage
}

func (m *mockNotifier) Send(ctx context.Context, msg domain.OutboxMessage) error {
	if m.SendFunc != nil {
		if err := m.SendFunc(ctx, msg); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, msg)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatchOnce(t *testing.T) {
	approved, _ := domain.NewOutboxMessage(domain.NotifyBookingApproved, "dana@example.com", map[string]int64{"booking_id": 7})
	opened, _ := domain.NewOutboxMessage(domain.NotifyRolesOpened, "matching", map[string]int64{"event_id": 3})

	outbox := &mockOutbox{
		FetchPendingFunc: func(ctx context.Context, limit int) ([]domain.OutboxMessage, error) {
			return []domain.OutboxMessage{*approved, *opened}, nil
		},
	}
	notifier := &mockNotifier{}

	d := NewDispatcher(outbox, notifier, testLogger(), 0)

	sent, err := d.DispatchOnce(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, []uuid.UUID{approved.ID, opened.ID}, outbox.marked)
}

func TestDispatchOnceFailedSendStaysPending(t *testing.T) {
	ok, _ := domain.NewOutboxMessage(domain.NotifyBookingRejected, "a@example.com", nil)
	broken, _ := domain.NewOutboxMessage(domain.NotifyBookingApproved, "b@example.com", nil)

	outbox := &mockOutbox{
		FetchPendingFunc: func(ctx context.Context, limit int) ([]domain.OutboxMessage, error) {
			return []domain.OutboxMessage{*ok, *broken}, nil
		},
	}
	notifier := &mockNotifier{
		SendFunc: func(ctx context.Context, m domain.OutboxMessage) error {
			if m.ID == broken.ID {
				return errors.New("transport down")
			}
			return nil
		},
	}

	d := NewDispatcher(outbox, notifier, testLogger(), 0)

	sent, err := d.DispatchOnce(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []uuid.UUID{ok.ID}, outbox.marked, "only delivered messages are marked")
}

func TestDispatchOnceEmpty(t *testing.T) {
	outbox := &mockOutbox{}
	d := NewDispatcher(outbox, &mockNotifier{}, testLogger(), 0)

	sent, err := d.DispatchOnce(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, outbox.marked)
}

package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationKind names the template a dispatched notification renders.
type NotificationKind string

const (
	NotifyBookingApproved   NotificationKind = "booking_approved"
	NotifyBookingRejected   NotificationKind = "booking_rejected"
	NotifyRolesOpened       NotificationKind = "roles_opened"
	NotifyAssignmentCreated NotificationKind = "assignment_created"
)

// OutboxMessage is a notification intent recorded transactionally with the
// business change that produced it and delivered later by the dispatcher.
type OutboxMessage struct {
	ID           uuid.UUID        `json:"id"`
	Kind         NotificationKind `json:"kind"`
	Recipient    string           `json:"recipient"`
	Payload      json.RawMessage  `json:"payload"`
	CreatedAt    time.Time        `json:"created_at"`
	DispatchedAt *time.Time       `json:"dispatched_at,omitempty"`
}

// NewOutboxMessage marshals payload and assigns a fresh ID.
func NewOutboxMessage(kind NotificationKind, recipient string, payload any) (*OutboxMessage, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &OutboxMessage{
		ID:        uuid.New(),
		Kind:      kind,
		Recipient: recipient,
		Payload:   raw,
	}, nil
}

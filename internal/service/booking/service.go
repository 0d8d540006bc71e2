// Package booking governs the booking lifecycle. Approval converts a booking
// into a staffable event in one transaction; a caller never observes an
// approved-but-unconverted booking.
package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/kirinyoku/crew-go/internal/domain"
	"github.com/kirinyoku/crew-go/internal/repository"
	postgresrepo "github.com/kirinyoku/crew-go/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/crew-go/internal/repository/redis"
	redisx "github.com/kirinyoku/crew-go/internal/redis"
	"github.com/kirinyoku/crew-go/internal/uow"
)

type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *redisx.EventsPubSub
	uow    *uow.UoW
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, pubsub *redisx.EventsPubSub) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
	}
}

// Decide applies an operator's verdict to a decidable booking.
//
// Approval creates the event (roles seeded from the booking's staff counts),
// marks the booking converted and queues the approval/roles-opened
// notifications — all in one unit of work. Rejection is terminal and queues a
// distinct notification. Notification delivery happens outside the
// transaction and can never undo the decision.
//
// Returns:
//   - *domain.Booking: the booking after the decision.
//   - error: booking.ErrBookingNotFound, booking.ErrInvalidDecision, or
//     booking.ErrInvalidTransition when the booking was already decided.
func (s *Service) Decide(ctx context.Context, bookingID int64, d domain.Decision) (*domain.Booking, error) {
	const op = "service.booking.Decide"

	if d != domain.DecisionApprove && d != domain.DecisionReject {
		return nil, fmt.Errorf("%s:%w", op, ErrInvalidDecision)
	}

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		b, err := s.store.Bookings().With(tx).GetForDecision(ctx, bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrBookingNotFound)
			}
			return fmt.Errorf("%s:%w", op, err)
		}

		if !b.Decidable() {
			return fmt.Errorf("%s:%w", op, ErrInvalidTransition)
		}

		if d == domain.DecisionReject {
			return s.reject(ctx, op, tx, b, after)
		}

		return s.approve(ctx, op, tx, b, after)
	})
	if err != nil {
		return nil, err
	}

	return s.store.Bookings().Get(ctx, bookingID)
}

func (s *Service) reject(
	ctx context.Context,
	op string,
	tx postgresrepo.DB,
	b *domain.Booking,
	after func(uow.AfterCommit),
) error {
	if err := s.store.Bookings().With(tx).MarkRejected(ctx, b.ID); err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			return fmt.Errorf("%s:%w", op, ErrInvalidTransition)
		}
		return fmt.Errorf("%s:%w", op, err)
	}

	msg, err := domain.NewOutboxMessage(
		domain.NotifyBookingRejected,
		b.Contact.Email,
		map[string]any{"booking_id": b.ID, "event_type": b.EventType},
	)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}
	if err := s.store.Outbox().With(tx).Append(ctx, msg); err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	after(func(ctx context.Context) {
		_ = s.cache.InvalidateBooking(ctx, b.ID)
	})

	return nil
}

func (s *Service) approve(
	ctx context.Context,
	op string,
	tx postgresrepo.DB,
	b *domain.Booking,
	after func(uow.AfterCommit),
) error {
	e := domain.EventFromBooking(b)

	eventID, err := s.store.Events().With(tx).Create(ctx, &e)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	if err := s.store.Bookings().With(tx).MarkConverted(ctx, b.ID, eventID); err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			return fmt.Errorf("%s:%w", op, ErrInvalidTransition)
		}
		return fmt.Errorf("%s:%w", op, err)
	}

	approved, err := domain.NewOutboxMessage(
		domain.NotifyBookingApproved,
		b.Contact.Email,
		map[string]any{"booking_id": b.ID, "event_id": eventID, "event_type": b.EventType},
	)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}
	if err := s.store.Outbox().With(tx).Append(ctx, approved); err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	opened, err := domain.NewOutboxMessage(
		domain.NotifyRolesOpened,
		"staff-matching",
		map[string]any{"event_id": eventID, "roles": e.Roles},
	)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}
	if err := s.store.Outbox().With(tx).Append(ctx, opened); err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	after(func(ctx context.Context) {
		_ = s.cache.InvalidateBooking(ctx, b.ID)
		_ = s.pubsub.PublishEventChanged(ctx, eventID)
	})

	return nil
}

// Get returns one booking without caching; the query service owns cached
// reads.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	const op = "service.booking.Get"

	b, err := s.store.Bookings().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrBookingNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return b, nil
}

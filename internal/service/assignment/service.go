package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kirinyoku/crew-go/internal/domain"
	"github.com/kirinyoku/crew-go/internal/payment"
	"github.com/kirinyoku/crew-go/internal/repository"
	postgresrepo "github.com/kirinyoku/crew-go/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/crew-go/internal/repository/redis"
	redisx "github.com/kirinyoku/crew-go/internal/redis"
	"github.com/kirinyoku/crew-go/internal/uow"
)

type Service struct {
	store   *postgresrepo.Store
	cache   *redisrepo.Cache
	pubsub  *redisx.EventsPubSub
	limiter *redisrepo.SlidingWindowLimiter
	uow     *uow.UoW
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisx.EventsPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
) *Service {
	return &Service{
		store:   store,
		cache:   cache,
		pubsub:  pubsub,
		limiter: limiter,
		uow:     uow.NewUoW(store),
	}
}

type CreateInput struct {
	EventID  int64
	StaffID  int64
	RoleName string
	Payment  domain.PaymentBreakdown
	// RateLimitKey scopes the sliding-window limiter; empty disables it.
	RateLimitKey string
}

// Create turns (event, staff, role, payment breakdown) into a persisted
// assignment. Either all three effects land together (assignment record,
// capacity increment, outbox entry) or none of them do.
//
// Returns:
//   - *domain.EventSnapshot: the authoritative post-operation event view.
//   - error: assignment.ErrStaffNotFound, assignment.ErrEventNotFound,
//     assignment.ErrRoleNotFound, assignment.ErrRoleFull, or a payment
//     validation error (errors.Is payment.ErrInvalid / ErrNonPositiveTotal).
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.EventSnapshot, error) {
	const op = "service.assignment.Create"

	if in.RoleName == "" {
		return nil, fmt.Errorf("%s:%w", op, ErrRoleNameRequired)
	}

	if s.limiter != nil && in.RateLimitKey != "" {
		ok, _, retry, err := s.limiter.Allow(ctx, in.RateLimitKey)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: rate limited, retry in %s", op, retry)
		}
	}

	staff, err := s.store.Staff().Get(ctx, in.StaffID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrStaffNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	total, err := payment.Compute(in.Payment)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	a := &domain.Assignment{
		ID:       uuid.New(),
		EventID:  in.EventID,
		StaffID:  staff.ID,
		Role:     in.RoleName,
		Status:   domain.AssignmentApproved,
		Payment:  in.Payment,
		TotalPay: total,
	}

	if err := s.commitFill(ctx, op, a); err != nil {
		return nil, err
	}

	return s.Snapshot(ctx, in.EventID)
}

// QuickAssign fills a role without payment details. Capacity rules still
// apply; the assignment starts pending with a zero breakdown to be completed
// later.
func (s *Service) QuickAssign(ctx context.Context, eventID, staffID int64, roleName string) (*domain.EventSnapshot, error) {
	const op = "service.assignment.QuickAssign"

	if roleName == "" {
		return nil, fmt.Errorf("%s:%w", op, ErrRoleNameRequired)
	}

	staff, err := s.store.Staff().Get(ctx, staffID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrStaffNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	a := &domain.Assignment{
		ID:      uuid.New(),
		EventID: eventID,
		StaffID: staff.ID,
		Role:    roleName,
		Status:  domain.AssignmentPending,
	}

	if err := s.commitFill(ctx, op, a); err != nil {
		return nil, err
	}

	return s.Snapshot(ctx, eventID)
}

// commitFill runs the single transactional unit: lock the event, bump the
// role counter under its guard, insert the assignment, record the outbox
// entry. After-commit hooks refresh the cache and announce the change.
func (s *Service) commitFill(ctx context.Context, op string, a *domain.Assignment) error {
	return s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		if err := s.store.Events().With(tx).LockForFill(ctx, a.EventID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrEventNotFound)
			}
			return fmt.Errorf("%s:%w", op, err)
		}

		if err := s.store.Events().With(tx).FillRole(ctx, a.EventID, a.Role); err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return fmt.Errorf("%s:%w", op, ErrRoleNotFound)
			}
			if errors.Is(err, repository.ErrRoleFull) {
				return fmt.Errorf("%s:%w", op, ErrRoleFull)
			}
			return fmt.Errorf("%s:%w", op, err)
		}

		if err := s.store.Assignments().With(tx).Insert(ctx, a); err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		msg, err := domain.NewOutboxMessage(
			domain.NotifyAssignmentCreated,
			fmt.Sprintf("staff:%d", a.StaffID),
			map[string]any{
				"event_id":  a.EventID,
				"staff_id":  a.StaffID,
				"role":      a.Role,
				"total_pay": a.TotalPay,
				"status":    a.Status,
			},
		)
		if err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}
		if err := s.store.Outbox().With(tx).Append(ctx, msg); err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateEvent(ctx, a.EventID)
			_ = s.pubsub.PublishEventChanged(ctx, a.EventID)
		})

		return nil
	})
}

// Snapshot loads the authoritative event view straight from the store,
// bypassing the cache.
func (s *Service) Snapshot(ctx context.Context, eventID int64) (*domain.EventSnapshot, error) {
	const op = "service.assignment.Snapshot"

	e, err := s.store.Events().Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	assignments, err := s.store.Assignments().ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &domain.EventSnapshot{
		Event:       *e,
		Assignments: assignments,
		Revenue:     e.Revenue(assignments),
	}, nil
}

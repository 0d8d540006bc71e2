// Package admin covers the operational write paths that sit next to the
// staffing flow: direct event creation, staff directory seeding, booking
// intake, and event lifecycle changes.
package admin

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

type CreateEventInput struct {
	Event domain.Event
	// SeedDefaultRole seeds a single General Staff role sized to
	// StaffRequired when the role list is empty. It is an explicit flag so
	// events without roles are a deliberate choice, not inferred behavior.
	SeedDefaultRole bool
	StaffRequired   int
}

// CreateEvent stores a directly created event and returns its ID.
//
// Returns:
//   - int64: the created event ID.
//   - error: admin.ErrInvalidRoles for duplicate names or negative counts,
//     admin.ErrInvalidBudget when the budget buckets disagree with the total.
func (s *Service) CreateEvent(ctx context.Context, in CreateEventInput) (int64, error) {
	const op = "service.admin.CreateEvent"

	e := in.Event

	if err := validateRoles(e.Roles); err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}
	if err := e.Budget.Validate(); err != nil {
		return 0, fmt.Errorf("%s:%w", op, ErrInvalidBudget)
	}

	if len(e.Roles) == 0 && in.SeedDefaultRole {
		if in.StaffRequired < 0 {
			return 0, fmt.Errorf("%s:%w", op, ErrInvalidRoles)
		}
		e.Roles = []domain.Role{{Name: domain.DefaultRoleName, Count: in.StaffRequired}}
	}

	if e.Status == "" {
		e.Status = domain.EventPending
	}

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.store.Events().With(tx).Create(ctx, &e)
		if err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}
		return nil
	})

	return id, err
}

// UpdateEventStatus moves an event along its lifecycle.
func (s *Service) UpdateEventStatus(ctx context.Context, id int64, next domain.EventStatus) error {
	const op = "service.admin.UpdateEventStatus"

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Events().With(tx).UpdateStatus(ctx, id, next); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrEventNotFound)
			}
			if errors.Is(err, repository.ErrInvalidTransition) {
				return fmt.Errorf("%s:%w", op, ErrInvalidTransition)
			}
			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateEvent(ctx, id)
			_ = s.pubsub.PublishEventChanged(ctx, id)
		})

		return nil
	})

	return err
}

// DeleteEvent removes an event and everything hanging off it.
func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	const op = "service.admin.DeleteEvent"

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Events().With(tx).Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrEventNotFound)
			}
			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateEvent(ctx, id)
			_ = s.pubsub.PublishEventChanged(ctx, id)
		})

		return nil
	})

	return err
}

// CreateStaff seeds one staff directory record.
func (s *Service) CreateStaff(ctx context.Context, st domain.Staff) (int64, error) {
	const op = "service.admin.CreateStaff"

	id, err := s.store.Staff().Insert(ctx, &st)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	_ = s.cache.InvalidateStaffDirectory(ctx)

	return id, nil
}

// CreateBooking records an inbound staffing request for later decision.
func (s *Service) CreateBooking(ctx context.Context, b domain.Booking) (int64, error) {
	const op = "service.admin.CreateBooking"

	id, err := s.store.Bookings().Create(ctx, &b)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	return id, nil
}

func validateRoles(roles []domain.Role) error {
	seen := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		if r.Name == "" || r.Count < 0 || r.Filled != 0 {
			return ErrInvalidRoles
		}
		if _, dup := seen[r.Name]; dup {
			return ErrInvalidRoles
		}
		seen[r.Name] = struct{}{}
	}
	return nil
}

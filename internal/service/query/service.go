package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kirinyoku/crew-go/internal/domain"
	"github.com/kirinyoku/crew-go/internal/repository"
	postgresrepo "github.com/kirinyoku/crew-go/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/crew-go/internal/repository/redis"
)

type Config struct {
	SnapshotTTL     time.Duration
	AvailabilityTTL time.Duration
	BookingTTL      time.Duration
	StaffTTL        time.Duration
}

type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	cfg   Config
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.SnapshotTTL <= 0 {
		cfg.SnapshotTTL = 60 * time.Second
	}
	if cfg.AvailabilityTTL <= 0 {
		cfg.AvailabilityTTL = 15 * time.Second
	}
	if cfg.BookingTTL <= 0 {
		cfg.BookingTTL = 60 * time.Second
	}
	if cfg.StaffTTL <= 0 {
		cfg.StaffTTL = 5 * time.Minute
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

// EventSnapshot returns the cached event view with assignments and resolved
// revenue. Mutating services invalidate this key after every commit.
func (s *Service) EventSnapshot(ctx context.Context, id int64) (*domain.EventSnapshot, error) {
	const op = "service.query.EventSnapshot"

	key := redisrepo.KeyEventSnapshot(id)

	snap, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.SnapshotTTL,
		func(ctx context.Context) (*domain.EventSnapshot, error) {
			return s.loadSnapshot(ctx, id)
		},
	)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return snap, nil
}

func (s *Service) loadSnapshot(ctx context.Context, id int64) (*domain.EventSnapshot, error) {
	e, err := s.store.Events().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	assignments, err := s.store.Assignments().ListByEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.EventSnapshot{
		Event:       *e,
		Assignments: assignments,
		Revenue:     e.Revenue(assignments),
	}, nil
}

// Availability returns the per-role fill counters for an event.
func (s *Service) Availability(ctx context.Context, id int64) ([]domain.Role, error) {
	const op = "service.query.Availability"

	key := redisrepo.KeyEventAvailability(id)

	roles, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.AvailabilityTTL,
		func(ctx context.Context) ([]domain.Role, error) {
			e, err := s.store.Events().Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return e.Roles, nil
		},
	)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return roles, nil
}

// Booking returns one cached booking.
func (s *Service) Booking(ctx context.Context, id int64) (*domain.Booking, error) {
	const op = "service.query.Booking"

	key := redisrepo.KeyBooking(id)

	b, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.BookingTTL,
		func(ctx context.Context) (*domain.Booking, error) {
			return s.store.Bookings().Get(ctx, id)
		},
	)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrBookingNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return b, nil
}

// StaffDirectory lists the staff reference data.
func (s *Service) StaffDirectory(ctx context.Context) ([]domain.Staff, error) {
	const op = "service.query.StaffDirectory"

	key := redisrepo.KeyStaffDirectory()

	staff, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.StaffTTL,
		func(ctx context.Context) ([]domain.Staff, error) {
			return s.store.Staff().List(ctx)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return staff, nil
}
